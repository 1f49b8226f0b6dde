package utils

import (
	"github.com/iov-one/vault"
)

// EventTagger binds an event sink to every transaction. Events published
// by a successful Deliver are appended to the result tags, so clients can
// subscribe to them. Events of failed or checked transactions are dropped.
type EventTagger struct{}

var _ vault.Decorator = EventTagger{}

// NewEventTagger creates an EventTagger decorator
func NewEventTagger() EventTagger {
	return EventTagger{}
}

// Check binds a sink that is discarded, so handlers can emit unconditionally.
func (EventTagger) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	ctx = vault.WithEventSink(ctx, &vault.EventBuffer{})
	return next.Check(ctx, db, tx)
}

// Deliver converts all collected events into result tags on success.
func (EventTagger) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	events := &vault.EventBuffer{}
	res, err := next.Deliver(vault.WithEventSink(ctx, events), db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, events.Tags()...)
	return res, nil
}
