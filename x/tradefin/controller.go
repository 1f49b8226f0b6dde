package tradefin

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/x"
)

// Event topics.
const (
	topicInit          = "init"
	topicTokenize      = "tokenize"
	topicEscrowCreated = "esc_crtd"
	topicEscrowActive  = "esc_act"
	topicEscrowRelease = "esc_rel"
)

// Controller implements the collateral and escrow state machine on top of
// a key value store. An operation either returns an error before anything
// is written, or stores the whole change and emits its event.
type Controller struct {
	gate        x.Gate
	admin       orm.ModelBucket
	collaterals orm.ModelBucket
	escrows     orm.ModelBucket
}

// NewController returns a controller that verifies identities with the
// given gate.
func NewController(gate x.Gate) *Controller {
	return &Controller{
		gate:        gate,
		admin:       NewAdminBucket(),
		collaterals: NewCollateralBucket(),
		escrows:     NewEscrowBucket(),
	}
}

// Initialize records the admin. It can succeed only once, any following
// call fails with ErrUnauthorized.
//
// The id counters are not reset to 1. Tokens and escrows created before
// the initialization keep their ids and the counters continue from the
// last issued id.
func (c *Controller) Initialize(ctx vault.Context, db vault.KVStore, admin vault.Address) error {
	if err := c.canInitialize(db, admin); err != nil {
		return err
	}
	if _, err := c.admin.Put(db, adminKey, &Admin{Address: admin}); err != nil {
		return errors.Wrap(err, "cannot store admin")
	}
	vault.EmitEvent(ctx, vault.NewEvent(topicInit, "admin", admin))
	vault.GetLogger(ctx).Debug("tradefin initialized", "admin", admin)
	return nil
}

func (c *Controller) canInitialize(db vault.ReadOnlyKVStore, admin vault.Address) error {
	switch err := c.admin.Has(db, adminKey); {
	case err == nil:
		return errors.Wrap(ErrUnauthorized, "already initialized")
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return errors.Field("Admin", admin.Validate(), "invalid admin")
}

// Admin returns the recorded admin. ErrNotFound is returned before the
// initialization.
func (c *Controller) Admin(db vault.ReadOnlyKVStore) (vault.Address, error) {
	var a Admin
	if err := c.admin.One(db, adminKey, &a); err != nil {
		return nil, errors.Wrap(err, "not initialized")
	}
	return a.Address, nil
}

// TokenizeCollateral stores a new collateral token owned by msg.Owner and
// returns its id.
func (c *Controller) TokenizeCollateral(ctx vault.Context, db vault.KVStore, msg *TokenizeCollateralMsg) (uint64, error) {
	token, err := c.newCollateral(ctx, msg)
	if err != nil {
		return 0, err
	}
	key, err := c.collaterals.Put(db, nil, token)
	if err != nil {
		return 0, errors.Wrap(err, "cannot store collateral")
	}
	id, err := orm.DecodeSequence(key)
	if err != nil {
		return 0, err
	}

	vault.EmitEvent(ctx, vault.NewEvent(topicTokenize,
		"token_id", id,
		"owner", token.Owner,
		"asset_value", token.AssetValue.Decimal(),
	))
	vault.GetLogger(ctx).Debug("collateral tokenized", "token_id", id, "owner", token.Owner)
	return id, nil
}

// newCollateral checks every precondition of the tokenization. Nothing is
// written.
func (c *Controller) newCollateral(ctx vault.Context, msg *TokenizeCollateralMsg) (*CollateralToken, error) {
	if err := c.gate.RequireAuthorized(ctx, msg.Owner); err != nil {
		return nil, err
	}
	if !msg.AssetValue.IsPositive() {
		return nil, errors.Wrapf(ErrInvalidAmount, "asset value %s", msg.AssetValue.Decimal())
	}
	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	token := &CollateralToken{
		Owner:            msg.Owner,
		AssetType:        msg.AssetType,
		AssetValue:       msg.AssetValue,
		Metadata:         msg.Metadata,
		FractionalShares: msg.FractionalShares,
		CreatedAt:        vault.AsUnixTime(now),
	}
	if err := token.Validate(); err != nil {
		return nil, err
	}
	return token, nil
}

// GetCollateral returns the token stored under given id, or nil if there
// is none.
func (c *Controller) GetCollateral(db vault.ReadOnlyKVStore, id uint64) (*CollateralToken, error) {
	var token CollateralToken
	switch err := c.collaterals.One(db, orm.EncodeSequence(id), &token); {
	case err == nil:
		return &token, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// CreateEscrow stores a new pending escrow and returns its id.
func (c *Controller) CreateEscrow(ctx vault.Context, db vault.KVStore, msg *CreateEscrowMsg) (uint64, error) {
	escrow, err := c.newEscrow(ctx, db, msg)
	if err != nil {
		return 0, err
	}
	key, err := c.escrows.Put(db, nil, escrow)
	if err != nil {
		return 0, errors.Wrap(err, "cannot store escrow")
	}
	id, err := orm.DecodeSequence(key)
	if err != nil {
		return 0, err
	}

	vault.EmitEvent(ctx, vault.NewEvent(topicEscrowCreated,
		"escrow_id", id,
		"buyer", escrow.Buyer,
		"seller", escrow.Seller,
		"amount", escrow.Amount.Decimal(),
	))
	vault.GetLogger(ctx).Debug("escrow created", "escrow_id", id, "token_id", escrow.CollateralTokenID)
	return id, nil
}

// newEscrow checks every precondition of the escrow creation. Nothing is
// written.
func (c *Controller) newEscrow(ctx vault.Context, db vault.ReadOnlyKVStore, msg *CreateEscrowMsg) (*TradeEscrow, error) {
	if err := c.gate.RequireAuthorized(ctx, msg.Buyer); err != nil {
		return nil, err
	}
	if !msg.Amount.IsPositive() {
		return nil, errors.Wrapf(ErrInvalidAmount, "amount %s", msg.Amount.Decimal())
	}
	switch err := c.collaterals.Has(db, orm.EncodeSequence(msg.CollateralTokenID)); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrEscrowNotFound, "collateral %d", msg.CollateralTokenID)
	case err != nil:
		return nil, err
	}
	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	escrow := &TradeEscrow{
		Buyer:             msg.Buyer,
		Seller:            msg.Seller,
		CollateralTokenID: msg.CollateralTokenID,
		Amount:            msg.Amount,
		Status:            EscrowPending,
		OracleAddress:     msg.OracleAddress,
		ReleaseConditions: msg.ReleaseConditions,
		CreatedAt:         vault.AsUnixTime(now),
	}
	if err := escrow.Validate(); err != nil {
		return nil, err
	}
	return escrow, nil
}

// GetEscrow returns the escrow stored under given id, or nil if there is
// none.
func (c *Controller) GetEscrow(db vault.ReadOnlyKVStore, id uint64) (*TradeEscrow, error) {
	escrow, err := c.loadEscrow(db, id)
	if ErrEscrowNotFound.Is(err) {
		return nil, nil
	}
	return escrow, err
}

// ActivateEscrow moves a pending escrow to active. Anyone can activate an
// escrow. An escrow that is not pending cannot be activated and
// ErrUnauthorized is returned.
func (c *Controller) ActivateEscrow(ctx vault.Context, db vault.KVStore, id uint64) error {
	escrow, err := c.activatable(db, id)
	if err != nil {
		return err
	}
	escrow.Status = EscrowActive
	if _, err := c.escrows.Put(db, orm.EncodeSequence(id), escrow); err != nil {
		return errors.Wrap(err, "cannot store escrow")
	}
	vault.EmitEvent(ctx, vault.NewEvent(topicEscrowActive, "escrow_id", id))
	vault.GetLogger(ctx).Debug("escrow activated", "escrow_id", id)
	return nil
}

func (c *Controller) activatable(db vault.ReadOnlyKVStore, id uint64) (*TradeEscrow, error) {
	escrow, err := c.loadEscrow(db, id)
	if err != nil {
		return nil, err
	}
	if escrow.Status != EscrowPending {
		return nil, errors.Wrapf(ErrUnauthorized, "escrow %d is %s", id, escrow.Status)
	}
	return escrow, nil
}

// ReleaseEscrow moves an active escrow to released. It must be authorized
// by the oracle stored in the escrow. Any status other than active fails
// with ErrEscrowAlreadyReleased.
func (c *Controller) ReleaseEscrow(ctx vault.Context, db vault.KVStore, id uint64) error {
	escrow, err := c.releasable(ctx, db, id)
	if err != nil {
		return err
	}
	escrow.Status = EscrowReleased
	if _, err := c.escrows.Put(db, orm.EncodeSequence(id), escrow); err != nil {
		return errors.Wrap(err, "cannot store escrow")
	}
	vault.EmitEvent(ctx, vault.NewEvent(topicEscrowRelease, "escrow_id", id))
	vault.GetLogger(ctx).Debug("escrow released", "escrow_id", id)
	return nil
}

func (c *Controller) releasable(ctx vault.Context, db vault.ReadOnlyKVStore, id uint64) (*TradeEscrow, error) {
	escrow, err := c.loadEscrow(db, id)
	if err != nil {
		return nil, err
	}
	if err := c.gate.RequireAuthorized(ctx, escrow.OracleAddress); err != nil {
		return nil, err
	}
	if escrow.Status != EscrowActive {
		return nil, errors.Wrapf(ErrEscrowAlreadyReleased, "escrow %d is %s", id, escrow.Status)
	}
	return escrow, nil
}

func (c *Controller) loadEscrow(db vault.ReadOnlyKVStore, id uint64) (*TradeEscrow, error) {
	var escrow TradeEscrow
	switch err := c.escrows.One(db, orm.EncodeSequence(id), &escrow); {
	case err == nil:
		return &escrow, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrEscrowNotFound, "escrow %d", id)
	default:
		return nil, err
	}
}
