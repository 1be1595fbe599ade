package event

import "sync"

// Type identifies a telemetry event for the observability pipeline.
type Type string

const (
	ConnectedType    Type = "CONNECTED"
	RoomJoinedType   Type = "ROOM_JOINED"
	RoomRejectedType Type = "ROOM_FULL_REJECTED"
	MessageSentType  Type = "MESSAGE_SENT"
	TypingRelayType  Type = "TYPING_RELAYED"
	RoomLeftType     Type = "ROOM_LEFT"
)

// Event is the envelope pushed on the telemetry channel.
// Delivery is best-effort: the producer drops rather than blocks.
type Event struct {
	Type    Type
	Payload any
}

// Counter accumulates per-type event counts.
// Safe for concurrent use.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}

// Snapshot returns a copy of all counts.
func (c *Counter) Snapshot() map[Type]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Type]uint64, len(c.counts))
	for t, n := range c.counts {
		out[t] = n
	}
	return out
}
