package vault

import (
	"context"
	"fmt"

	"github.com/tendermint/tendermint/libs/common"
)

// Attribute is a single key value pair carried by an event.
type Attribute struct {
	Key   string
	Value string
}

// Event is a notification about a state change. Events are fire-and-forget,
// publishing never fails and an event without a listener is dropped.
type Event struct {
	Topic      string
	Attributes []Attribute
}

// NewEvent creates an event for given topic. Attributes are given as key
// value pairs. Values are formatted with the %v verb.
func NewEvent(topic string, keyvals ...interface{}) Event {
	if len(keyvals)%2 != 0 {
		panic(fmt.Sprintf("event %q: odd number of attribute elements", topic))
	}
	ev := Event{Topic: topic}
	for i := 0; i < len(keyvals); i += 2 {
		ev.Attributes = append(ev.Attributes, Attribute{
			Key:   fmt.Sprint(keyvals[i]),
			Value: fmt.Sprint(keyvals[i+1]),
		})
	}
	return ev
}

// Get returns the value of the attribute with given key.
func (e Event) Get(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Tags returns the event in a form that can be indexed by tendermint. Each
// attribute is stored under "<topic>.<key>".
func (e Event) Tags() []common.KVPair {
	tags := make([]common.KVPair, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		tags = append(tags, common.KVPair{
			Key:   []byte(e.Topic + "." + a.Key),
			Value: []byte(a.Value),
		})
	}
	return tags
}

// EventSink receives published events.
type EventSink interface {
	Publish(Event)
}

// EventBuffer is an EventSink that keeps all published events in memory.
// It is meant to collect events of a single transaction, so that they can
// be discarded if the transaction fails. It is not safe for concurrent use.
type EventBuffer struct {
	events []Event
}

var _ EventSink = (*EventBuffer)(nil)

// Publish implements EventSink.
func (b *EventBuffer) Publish(e Event) {
	b.events = append(b.events, e)
}

// Events returns all collected events in the order they were published.
func (b *EventBuffer) Events() []Event {
	return b.events
}

// Tags returns tags of all collected events.
func (b *EventBuffer) Tags() []common.KVPair {
	var tags []common.KVPair
	for _, e := range b.events {
		tags = append(tags, e.Tags()...)
	}
	return tags
}

// Reset drops all collected events.
func (b *EventBuffer) Reset() {
	b.events = nil
}

// WithEventSink binds an event sink to the context. All events emitted with
// this context are published to given sink.
func WithEventSink(ctx Context, sink EventSink) Context {
	return context.WithValue(ctx, contextKeyEventSink, sink)
}

// EmitEvent publishes an event to the sink bound to the context. If no sink
// is bound, the event is dropped.
func EmitEvent(ctx Context, e Event) {
	sink, ok := ctx.Value(contextKeyEventSink).(EventSink)
	if !ok || sink == nil {
		return
	}
	sink.Publish(e)
}
