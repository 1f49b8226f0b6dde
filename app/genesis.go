package app

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/iov-one/vault/errors"
)

// appStateKey is the tendermint genesis section holding the application
// configuration. Its content is passed to the Initializer on InitChain.
const appStateKey = "app_state"

// AddGenesisAppState sets the app_state of the tendermint genesis file
// found under given path. All other sections are preserved. An existing
// app_state is overwritten only if force is set.
func AddGenesisAppState(genesisFile string, appState json.RawMessage, force bool) error {
	raw, err := ioutil.ReadFile(genesisFile)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %s: %s", genesisFile, err)
	}
	if cur, ok := doc[appStateKey]; ok && !force && len(cur) > 0 && string(cur) != "null" {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set, use force to overwrite")
	}
	doc[appStateKey] = appState

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	info, err := os.Stat(genesisFile)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(genesisFile, out, info.Mode()); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
