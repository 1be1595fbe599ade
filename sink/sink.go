// Package sink provides the per-connection delivery channel between the
// broadcast core and a transport.
package sink

import (
	"context"

	"duochat/contract"
	"duochat/domain/event"
)

var _ contract.EventSink = (*Channel)(nil)

// Channel buffers outbound events for one connection. The transport owns
// the reading side and pumps events onto the wire at its own pace.
type Channel struct {
	Events chan event.Outbound
}

func NewChannel(bufferSize int) *Channel {
	return &Channel{Events: make(chan event.Outbound, bufferSize)}
}

// Consume is called by the router.
// Redirect the event through the concerned owner of the channel.
// A full buffer means the peer is too slow: the event is dropped rather
// than stalling room admission for everyone else.
func (s *Channel) Consume(ctx context.Context, e event.Outbound) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
