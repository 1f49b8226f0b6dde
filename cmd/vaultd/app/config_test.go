package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	home, err := ioutil.TempDir("", "vaultd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfg, err := LoadConfig(filepath.Join(home, "node"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(filepath.Join(home, "node")), cfg)

	_, err = os.Stat(filepath.Join(home, "node", ConfigFile))
	require.NoError(t, err)

	// the written file is read back unchanged
	again, err := LoadConfig(filepath.Join(home, "node"))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig(t *testing.T) {
	cases := map[string]struct {
		content string
		want    Config
		wantErr *errors.Error
	}{
		"partial file keeps defaults": {
			content: "Debug = true\nMetricsAddress = \"localhost:9100\"\n",
			want: Config{
				Bind:           "tcp://localhost:26658",
				DBPath:         "HOME/vault.db",
				Debug:          true,
				LogLevel:       "info",
				MetricsAddress: "localhost:9100",
			},
		},
		"memory store": {
			content: "DBPath = \"\"\nLogLevel = \"debug\"\n",
			want: Config{
				Bind:     "tcp://localhost:26658",
				LogLevel: "debug",
			},
		},
		"unknown key": {
			content: "Port = 26658\n",
			wantErr: errors.ErrInput,
		},
		"invalid log level": {
			content: "LogLevel = \"loud\"\n",
			wantErr: errors.ErrInput,
		},
		"empty bind": {
			content: "Bind = \"\"\n",
			wantErr: errors.ErrEmpty,
		},
		"malformed": {
			content: "Bind = ",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			home, err := ioutil.TempDir("", "vaultd")
			require.NoError(t, err)
			defer os.RemoveAll(home)

			path := filepath.Join(home, ConfigFile)
			require.NoError(t, ioutil.WriteFile(path, []byte(tc.content), 0o644))

			cfg, err := LoadConfig(home)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "want %s, got %+v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			if tc.want.DBPath != "" {
				tc.want.DBPath = filepath.Join(home, "vault.db")
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
