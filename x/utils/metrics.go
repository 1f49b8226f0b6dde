package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts processed transactions and measures
// how long their processing takes.
//
//   vault_tx_total{call, path, code}
//   vault_tx_duration_seconds{call, path}
//
// The call label is either "check" or "deliver" and code is the ABCI code of
// the result.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ vault.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator with its collectors registered in
// given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vault",
				Name:      "tx_total",
				Help:      "Number of processed transactions.",
			},
			[]string{"call", "path", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vault",
				Name:      "tx_duration_seconds",
				Help:      "Transaction processing duration in seconds.",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"call", "path"},
		),
	}
	for _, c := range []prometheus.Collector{m.total, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrHuman, "register metrics: %s", err)
		}
	}
	return m, nil
}

// Check records the result of every check.
func (m *Metrics) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	m.observe("check", vault.GetPath(tx), start, err)
	return res, err
}

// Deliver records the result of every deliver.
func (m *Metrics) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	m.observe("deliver", vault.GetPath(tx), start, err)
	return res, err
}

func (m *Metrics) observe(call, path string, start time.Time, err error) {
	code, _ := errors.ABCIInfo(err, false)
	m.total.WithLabelValues(call, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(call, path).Observe(time.Since(start).Seconds())
}
