package tradefin

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const (
	pathInitializeMsg         = "tradefin/initialize"
	pathTokenizeCollateralMsg = "tradefin/tokenize"
	pathCreateEscrowMsg       = "tradefin/create_escrow"
	pathActivateEscrowMsg     = "tradefin/activate_escrow"
	pathReleaseEscrowMsg      = "tradefin/release_escrow"
)

var _ vault.Msg = (*InitializeMsg)(nil)
var _ vault.Msg = (*TokenizeCollateralMsg)(nil)
var _ vault.Msg = (*CreateEscrowMsg)(nil)
var _ vault.Msg = (*ActivateEscrowMsg)(nil)
var _ vault.Msg = (*ReleaseEscrowMsg)(nil)

// Path fulfills vault.Msg interface to allow routing
func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

// Path fulfills vault.Msg interface to allow routing
func (TokenizeCollateralMsg) Path() string {
	return pathTokenizeCollateralMsg
}

// Path fulfills vault.Msg interface to allow routing
func (CreateEscrowMsg) Path() string {
	return pathCreateEscrowMsg
}

// Path fulfills vault.Msg interface to allow routing
func (ActivateEscrowMsg) Path() string {
	return pathActivateEscrowMsg
}

// Path fulfills vault.Msg interface to allow routing
func (ReleaseEscrowMsg) Path() string {
	return pathReleaseEscrowMsg
}

// Validate accepts any admin. The address is checked by the controller,
// after the system is known not to be initialized.
func (m *InitializeMsg) Validate() error {
	return nil
}

// Validate checks the message is well formed. The asset value sign is not
// checked here, the owner authorization must be verified first.
func (m *TokenizeCollateralMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.Append(errs, validateSymbol("AssetType", m.AssetType))
	if m.AssetValue == nil {
		errs = errors.AppendField(errs, "AssetValue", errors.ErrEmpty)
	}
	errs = errors.Append(errs, validateSymbol("Metadata", m.Metadata))
	return errs
}

// Validate checks the message is well formed. Like with tokenization, the
// amount sign is checked only after the buyer authorization.
func (m *CreateEscrowMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Buyer", m.Buyer.Validate())
	errs = errors.AppendField(errs, "Seller", m.Seller.Validate())
	if m.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "OracleAddress", m.OracleAddress.Validate())
	errs = errors.Append(errs, validateSymbol("ReleaseConditions", m.ReleaseConditions))
	return errs
}

// Validate always passes. An unknown escrow id is reported as
// ErrEscrowNotFound by the handler.
func (m *ActivateEscrowMsg) Validate() error {
	return nil
}

// Validate always passes. An unknown escrow id is reported as
// ErrEscrowNotFound by the handler.
func (m *ReleaseEscrowMsg) Validate() error {
	return nil
}
