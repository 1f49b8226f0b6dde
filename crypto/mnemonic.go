package crypto

import (
	"strings"

	"github.com/iov-one/vault/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	bip39 "github.com/tyler-smith/go-bip39"
)

// DefaultDerivationPath is the SLIP-10 path used for keys derived from a
// recovery phrase.
const DefaultDerivationPath = "m/44'/234'/0'"

// mnemonicEntropyBits gives a 24 words recovery phrase.
const mnemonicEntropyBits = 256

// GenerateMnemonic returns a new random BIP39 recovery phrase.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errors.Wrapf(errors.ErrHuman, "entropy: %s", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrapf(errors.ErrHuman, "mnemonic: %s", err)
	}
	return mnemonic, nil
}

// KeyFromMnemonic derives a private key from given recovery phrase using the
// given derivation path. Passphrase may be empty.
func KeyFromMnemonic(mnemonic, passphrase, path string) (*PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid mnemonic: %s", err)
	}
	return DeriveKey(seed, path)
}

// DeriveKey derives an ed25519 private key from a BIP39 seed following
// SLIP-10.
func DeriveKey(seed []byte, path string) (*PrivateKey, error) {
	key, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive %q: %s", path, err)
	}
	return PrivKeyEd25519FromSeed(key.Key), nil
}
