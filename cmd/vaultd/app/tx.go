package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/tradefin"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (vault.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ vault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (vault.Msg, error) {
	var msgs []vault.Msg
	if m := tx.GetInitializeMsg(); m != nil {
		msgs = append(msgs, m)
	}
	if m := tx.GetTokenizeCollateralMsg(); m != nil {
		msgs = append(msgs, m)
	}
	if m := tx.GetCreateEscrowMsg(); m != nil {
		msgs = append(msgs, m)
	}
	if m := tx.GetActivateEscrowMsg(); m != nil {
		msgs = append(msgs, m)
	}
	if m := tx.GetReleaseEscrowMsg(); m != nil {
		msgs = append(msgs, m)
	}
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages, only one allowed", len(msgs))
	}
}

// SetMsg sets the message field matching the type of given message. All
// other message fields are cleared.
func (tx *Tx) SetMsg(msg vault.Msg) error {
	tx.InitializeMsg = nil
	tx.TokenizeCollateralMsg = nil
	tx.CreateEscrowMsg = nil
	tx.ActivateEscrowMsg = nil
	tx.ReleaseEscrowMsg = nil

	switch m := msg.(type) {
	case *tradefin.InitializeMsg:
		tx.InitializeMsg = m
	case *tradefin.TokenizeCollateralMsg:
		tx.TokenizeCollateralMsg = m
	case *tradefin.CreateEscrowMsg:
		tx.CreateEscrowMsg = m
	case *tradefin.ActivateEscrowMsg:
		tx.ActivateEscrowMsg = m
	case *tradefin.ReleaseEscrowMsg:
		tx.ReleaseEscrowMsg = m
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
