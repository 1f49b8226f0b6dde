package tradefin

import (
	"regexp"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	collateralBucketName = "collateral"
	escrowBucketName     = "escrow"
	adminBucketName      = "tfadmin"
)

// adminKey is the only key used in the admin bucket.
var adminKey = []byte("admin")

// isSymbol checks the short tags attached to collaterals and escrows.
var isSymbol = regexp.MustCompile(`^[a-zA-Z0-9_]{0,32}$`).MatchString

var _ orm.Model = (*Admin)(nil)

// Validate ensures the admin record holds a valid address.
func (a *Admin) Validate() error {
	if err := a.Address.Validate(); err != nil {
		return errors.Field("Address", err, "invalid admin")
	}
	return nil
}

var _ orm.Model = (*CollateralToken)(nil)

// Validate ensures the collateral token is valid.
func (c *CollateralToken) Validate() error {
	var errs error
	if err := c.Owner.Validate(); err != nil {
		errs = errors.AppendField(errs, "Owner", err)
	}
	if !isSymbol(c.AssetType) {
		errs = errors.AppendField(errs, "AssetType", errors.ErrInput)
	}
	if !c.AssetValue.IsPositive() {
		errs = errors.AppendField(errs, "AssetValue", ErrInvalidAmount)
	}
	if !isSymbol(c.Metadata) {
		errs = errors.AppendField(errs, "Metadata", errors.ErrInput)
	}
	if c.CreatedAt == 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.ErrEmpty)
	} else if err := c.CreatedAt.Validate(); err != nil {
		errs = errors.AppendField(errs, "CreatedAt", err)
	}
	return errs
}

var _ orm.Model = (*TradeEscrow)(nil)

// Validate ensures the escrow is valid.
func (e *TradeEscrow) Validate() error {
	var errs error
	if err := e.Buyer.Validate(); err != nil {
		errs = errors.AppendField(errs, "Buyer", err)
	}
	if err := e.Seller.Validate(); err != nil {
		errs = errors.AppendField(errs, "Seller", err)
	}
	if e.CollateralTokenID == 0 {
		errs = errors.AppendField(errs, "CollateralTokenID", errors.ErrEmpty)
	}
	if !e.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", ErrInvalidAmount)
	}
	if _, ok := EscrowStatus_name[int32(e.Status)]; !ok || e.Status == EscrowInvalid {
		errs = errors.AppendField(errs, "Status", errors.ErrState)
	}
	if err := e.OracleAddress.Validate(); err != nil {
		errs = errors.AppendField(errs, "OracleAddress", err)
	}
	if !isSymbol(e.ReleaseConditions) {
		errs = errors.AppendField(errs, "ReleaseConditions", errors.ErrInput)
	}
	if e.CreatedAt == 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.ErrEmpty)
	} else if err := e.CreatedAt.Validate(); err != nil {
		errs = errors.AppendField(errs, "CreatedAt", err)
	}
	return errs
}

// NewAdminBucket returns the bucket holding the single admin record.
func NewAdminBucket() orm.ModelBucket {
	return orm.NewModelBucket(adminBucketName, &Admin{})
}

// NewCollateralBucket returns a bucket of collateral tokens, keyed by the
// sequence allocated id and indexed by owner.
func NewCollateralBucket() orm.ModelBucket {
	return orm.NewModelBucket(collateralBucketName, &CollateralToken{},
		orm.WithIDSequence(orm.NewSequence(collateralBucketName, orm.SeqID)),
		orm.WithIndex("owner", ownerIndex, false),
	)
}

func ownerIndex(obj orm.Object) ([]byte, error) {
	c, ok := obj.Value().(*CollateralToken)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return c.Owner, nil
}

// NewEscrowBucket returns a bucket of trade escrows, keyed by the sequence
// allocated id and indexed by every party and by the collateral.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket(escrowBucketName, &TradeEscrow{},
		orm.WithIDSequence(orm.NewSequence(escrowBucketName, orm.SeqID)),
		orm.WithIndex("buyer", escrowIndex(func(e *TradeEscrow) []byte { return e.Buyer }), false),
		orm.WithIndex("seller", escrowIndex(func(e *TradeEscrow) []byte { return e.Seller }), false),
		orm.WithIndex("oracle", escrowIndex(func(e *TradeEscrow) []byte { return e.OracleAddress }), false),
		orm.WithIndex("collateral", escrowIndex(func(e *TradeEscrow) []byte {
			return orm.EncodeSequence(e.CollateralTokenID)
		}), false),
	)
}

func escrowIndex(fn func(*TradeEscrow) []byte) orm.Indexer {
	return func(obj orm.Object) ([]byte, error) {
		e, ok := obj.Value().(*TradeEscrow)
		if !ok {
			return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
		}
		return fn(e), nil
	}
}

// validateSymbol is used by messages, before any state is touched.
func validateSymbol(field, value string) error {
	if !isSymbol(value) {
		return errors.Field(field, errors.ErrInput, "%q is not a symbol of at most 32 [a-zA-Z0-9_] characters", value)
	}
	return nil
}
