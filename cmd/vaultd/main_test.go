package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(log.NewNopLogger())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, vault.Version()+"\n", out)
}

func TestInitCommand(t *testing.T) {
	home, err := ioutil.TempDir("", "vaultd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	genesis := filepath.Join(home, "config", "genesis.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(genesis), 0o755))
	require.NoError(t, ioutil.WriteFile(genesis, []byte(`{"chain_id": "vault-chain"}`), 0o644))

	admin := "0102030405060708090A0B0C0D0E0F1011121314"
	out, err := run(t, "init", "--home", home, "--admin", admin)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	raw, err := ioutil.ReadFile(genesis)
	require.NoError(t, err)
	var doc struct {
		AppState struct {
			Tradefin struct {
				Admin string `json:"admin"`
			} `json:"tradefin"`
		} `json:"app_state"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, admin, doc.AppState.Tradefin.Admin)

	// app_state is written only once unless forced
	_, err = run(t, "init", "--home", home)
	assert.True(t, errors.ErrDuplicate.Is(err), "%+v", err)

	out, err = run(t, "init", "--home", home, "--force")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "recovery phrase"), out)
}

func TestStartCommandRejectsInvalidConfig(t *testing.T) {
	home, err := ioutil.TempDir("", "vaultd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfg := filepath.Join(home, "vaultd.toml")
	require.NoError(t, ioutil.WriteFile(cfg, []byte("LogLevel = \"loud\"\n"), 0o644))

	_, err = run(t, "start", "--home", home)
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}
