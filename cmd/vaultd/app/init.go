package app

import (
	"encoding/json"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/tradefin"
)

// GenerateAdminKey returns the address of a new key, along with the
// recovery phrase the key is derived from.
func GenerateAdminKey() (vault.Address, string, error) {
	mnemonic, err := crypto.GenerateMnemonic()
	if err != nil {
		return nil, "", err
	}
	key, err := crypto.KeyFromMnemonic(mnemonic, "", crypto.DefaultDerivationPath)
	if err != nil {
		return nil, "", err
	}
	return key.PublicKey().Address(), mnemonic, nil
}

// GenInitOptions produces the genesis app_state with given admin. The
// returned phrase is empty unless a new admin key was generated, which
// happens when no admin is given.
func GenInitOptions(admin vault.Address) (json.RawMessage, string, error) {
	var phrase string
	if len(admin) == 0 {
		addr, mnemonic, err := GenerateAdminKey()
		if err != nil {
			return nil, "", err
		}
		admin, phrase = addr, mnemonic
	}
	if err := admin.Validate(); err != nil {
		return nil, "", errors.Wrap(err, "admin")
	}

	state := map[string]interface{}{
		"tradefin": tradefin.Genesis{Admin: admin},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrModel, err.Error())
	}
	return raw, phrase, nil
}
