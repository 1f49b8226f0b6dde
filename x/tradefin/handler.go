package tradefin

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/x"
)

const (
	initializeCost         int64 = 0
	tokenizeCollateralCost int64 = 100
	createEscrowCost       int64 = 100
	activateEscrowCost     int64 = 10
	releaseEscrowCost      int64 = 10
)

// RegisterRoutes will instantiate and register all handlers in this
// package. Identities are verified with given authenticator.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	ctrl := NewController(x.NewGate(auth))
	r.Handle(pathInitializeMsg, InitializeHandler{ctrl})
	r.Handle(pathTokenizeCollateralMsg, TokenizeCollateralHandler{ctrl})
	r.Handle(pathCreateEscrowMsg, CreateEscrowHandler{ctrl})
	r.Handle(pathActivateEscrowMsg, ActivateEscrowHandler{ctrl})
	r.Handle(pathReleaseEscrowMsg, ReleaseEscrowHandler{ctrl})
}

// RegisterQuery exposes collaterals under "/collaterals", escrows under
// "/escrows" and the admin under "/tradefin/admin". Every index is
// available as a sub path, for example "/escrows/oracle".
func RegisterQuery(qr vault.QueryRouter) {
	NewCollateralBucket().Register("collaterals", qr)
	NewEscrowBucket().Register("escrows", qr)
	NewAdminBucket().Register("tradefin/admin", qr)
}

// InitializeHandler records the admin.
type InitializeHandler struct {
	ctrl *Controller
}

var _ vault.Handler = InitializeHandler{}

// Check verifies the system was not initialized yet.
func (h InitializeHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg InitializeMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.canInitialize(db, msg.Admin); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: initializeCost}, nil
}

// Deliver stores the admin.
func (h InitializeHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg InitializeMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Initialize(ctx, db, msg.Admin); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// TokenizeCollateralHandler creates collateral tokens.
type TokenizeCollateralHandler struct {
	ctrl *Controller
}

var _ vault.Handler = TokenizeCollateralHandler{}

// Check verifies the owner signed the message and the value is positive.
func (h TokenizeCollateralHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg TokenizeCollateralMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.newCollateral(ctx, &msg); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: tokenizeCollateralCost}, nil
}

// Deliver stores the token. The result data is the token id.
func (h TokenizeCollateralHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg TokenizeCollateralMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	id, err := h.ctrl.TokenizeCollateral(ctx, db, &msg)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: orm.EncodeSequence(id)}, nil
}

// CreateEscrowHandler creates pending escrows.
type CreateEscrowHandler struct {
	ctrl *Controller
}

var _ vault.Handler = CreateEscrowHandler{}

// Check verifies the buyer signed the message, the amount is positive and
// the collateral exists.
func (h CreateEscrowHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg CreateEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.newEscrow(ctx, db, &msg); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores the escrow. The result data is the escrow id.
func (h CreateEscrowHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg CreateEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	id, err := h.ctrl.CreateEscrow(ctx, db, &msg)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: orm.EncodeSequence(id)}, nil
}

// ActivateEscrowHandler activates pending escrows.
type ActivateEscrowHandler struct {
	ctrl *Controller
}

var _ vault.Handler = ActivateEscrowHandler{}

// Check verifies the escrow is pending.
func (h ActivateEscrowHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ActivateEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.activatable(db, msg.EscrowID); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: activateEscrowCost}, nil
}

// Deliver activates the escrow.
func (h ActivateEscrowHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ActivateEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.ActivateEscrow(ctx, db, msg.EscrowID); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

// ReleaseEscrowHandler releases active escrows.
type ReleaseEscrowHandler struct {
	ctrl *Controller
}

var _ vault.Handler = ReleaseEscrowHandler{}

// Check verifies the oracle signed the message and the escrow is active.
func (h ReleaseEscrowHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ReleaseEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.releasable(ctx, db, msg.EscrowID); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: releaseEscrowCost}, nil
}

// Deliver releases the escrow.
func (h ReleaseEscrowHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ReleaseEscrowMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.ReleaseEscrow(ctx, db, msg.EscrowID); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}
