package vault

import (
	"encoding/json"
	"time"

	"github.com/iov-one/vault/errors"
)

// UnixTime is a second precision POSIX timestamp. Deadlines and block
// times are stored in this form.
type UnixTime int64

// AsUnixTime drops the sub-second part of t.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add behaves like time.Time.Add, truncated to whole seconds.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

func (t UnixTime) String() string {
	return t.Time().String()
}

func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// UnmarshalJSON accepts a number of seconds as well as an RFC 3339 string,
// which reads better in a genesis file.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var v UnixTime
	var secs int64
	var stamp time.Time
	switch {
	case json.Unmarshal(raw, &secs) == nil:
		v = UnixTime(secs)
	case json.Unmarshal(raw, &stamp) == nil:
		v = AsUnixTime(stamp)
	default:
		return errors.Wrap(errors.ErrInput, "invalid time format")
	}
	if v < 0 {
		return errors.Wrap(errors.ErrInput, "time before epoch")
	}
	*t = v
	return nil
}
