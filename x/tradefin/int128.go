package tradefin

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/iov-one/vault/errors"
)

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	lowMask   = new(big.Int).SetUint64(^uint64(0))
)

// NewInt128 returns the 128 bit representation of given value.
func NewInt128(v int64) *Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return &Int128{Hi: hi, Lo: uint64(v)}
}

// Int128FromBig converts a big integer. ErrOverflow is returned if the
// value does not fit into 128 bits.
func Int128FromBig(b *big.Int) (*Int128, error) {
	if b.Cmp(maxInt128) > 0 || b.Cmp(minInt128) < 0 {
		return nil, errors.Wrapf(errors.ErrOverflow, "%s does not fit in 128 bits", b)
	}
	lo := new(big.Int).And(b, lowMask).Uint64()
	hi := new(big.Int).Rsh(b, 64).Int64()
	return &Int128{Hi: hi, Lo: lo}, nil
}

// ParseInt128 reads a decimal representation.
func ParseInt128(s string) (*Int128, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "invalid integer %q", s)
	}
	return Int128FromBig(b)
}

// Big returns the value as a big integer. Nil is zero.
func (i *Int128) Big() *big.Int {
	if i == nil {
		return new(big.Int)
	}
	b := new(big.Int).Lsh(big.NewInt(i.Hi), 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

// Sign returns -1, 0 or 1.
func (i *Int128) Sign() int {
	switch {
	case i == nil:
		return 0
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// IsPositive is true for values greater than zero.
func (i *Int128) IsPositive() bool {
	return i.Sign() > 0
}

// Equals compares the numeric values.
func (i *Int128) Equals(o *Int128) bool {
	return i.GetHi() == o.GetHi() && i.GetLo() == o.GetLo()
}

// Decimal returns the base 10 representation.
func (i *Int128) Decimal() string {
	return i.Big().String()
}

// MarshalJSON encodes the value as a decimal string, so that no precision
// is lost by javascript clients.
func (i *Int128) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Decimal())
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (i *Int128) UnmarshalJSON(raw []byte) error {
	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	v, err := ParseInt128(s)
	if err != nil {
		return err
	}
	*i = *v
	return nil
}
