package event

import (
	"log/slog"
)

// MessageSentHandler handles events when a chat message is broadcast.
// Useful for updating observability metrics, logging, or telemetry.
type MessageSentHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewMessageSentHandler(log *slog.Logger, counter *Counter) *MessageSentHandler {
	return &MessageSentHandler{log: log, counter: counter}
}

func (p *MessageSentHandler) Handle(event Event) {
	switch event.Type {
	case MessageSentType:
		p.counter.Increment(MessageSentType)
	}
}
