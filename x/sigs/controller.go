package sigs

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
)

// SignCodeV1 starts every signed message.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures verifies every signature of tx and increments the
// nonce of each signer. The conditions of the signers are returned in the
// order of the signatures.
func VerifyTxSignatures(db vault.KVStore, tx SignedTx, chainID string) ([]vault.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	var signers []vault.Condition
	for _, sig := range tx.GetSignatures() {
		cond, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, err
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature checks sig over payload. The nonce of the signature
// must be the current nonce of the signer account, which is then
// incremented.
func VerifySignature(db vault.KVStore, sig *StdSignature, payload []byte, chainID string) (vault.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	msg, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	accounts := NewBucket()
	user, err := accounts.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(msg, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := accounts.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

/*
BuildSignBytes returns the sha512 digest of the signed message:

  SignCodeV1 | len(chainID) | chainID | nonce     | payload
  4 bytes    | 1 byte       | ascii   | int64, BE | serialized tx

Binding the chain id and the nonce prevents replays on other chains and
of older transactions.
*/
func BuildSignBytes(payload []byte, chainID string, nonce int64) ([]byte, error) {
	if nonce < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !vault.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], uint64(nonce))

	var buf bytes.Buffer
	buf.Write(SignCodeV1)
	buf.WriteByte(uint8(len(chainID)))
	buf.WriteString(chainID)
	buf.Write(seq[:])
	buf.Write(payload)

	sum := sha512.Sum512(buf.Bytes())
	return sum[:], nil
}

// SignTx signs tx with the given nonce.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, nonce int64) (*StdSignature, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	msg, err := BuildSignBytes(payload, chainID, nonce)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Sequence: nonce, Pubkey: signer.PublicKey(), Signature: sig}, nil
}

// NextNonce returns the nonce the next signature of signer must use. A
// signer without an account starts at zero.
func NextNonce(db vault.ReadOnlyKVStore, signer vault.Address) (int64, error) {
	var user UserData
	err := NewBucket().One(db, signer, &user)
	switch {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrap(err, "bucket get")
	}
	return user.Sequence, nil
}
