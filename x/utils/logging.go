package utils

import (
	"time"

	"github.com/iov-one/vault"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one entry per transaction with its path and duration.
// Failures are logged as errors, checks at debug and deliveries at info level.
type Logging struct{}

var _ vault.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logTx(ctx, tx, start, err).Debug(msg)
	return res, err
}

func (Logging) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logTx(ctx, tx, start, err).Info(msg)
	return res, err
}

// logTx returns the context logger with the transaction fields attached.
// When err is set every level logs at error level with the error attached.
func logTx(ctx vault.Context, tx vault.Tx, start time.Time, err error) log.Logger {
	logger := vault.GetLogger(ctx).With(
		"duration", time.Since(start)/time.Microsecond,
		"path", vault.GetPath(tx),
	)
	if err != nil {
		return failed{logger, err}
	}
	return logger
}

type failed struct {
	log.Logger
	err error
}

func (f failed) Debug(msg string, keyvals ...interface{}) {
	f.Error(msg, append(keyvals, "err", f.err)...)
}

func (f failed) Info(msg string, keyvals ...interface{}) {
	f.Error(msg, append(keyvals, "err", f.err)...)
}
