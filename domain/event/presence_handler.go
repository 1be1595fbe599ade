package event

import (
	"log/slog"

	"duochat/errors"
)

// PresencePayload accompanies join/leave/rejection telemetry events.
type PresencePayload struct {
	User string
	Room string
}

// PresenceHandler counts membership transitions: joins, departures and
// capacity rejections. It is triggered from the telemetry pipeline, never
// from the mutation path.
type PresenceHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewPresenceHandler(log *slog.Logger, counter *Counter) *PresenceHandler {
	return &PresenceHandler{log: log, counter: counter}
}

func (h *PresenceHandler) Handle(event Event) {
	switch event.Type {
	case RoomJoinedType, RoomLeftType, RoomRejectedType:
		if _, ok := event.Payload.(PresencePayload); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(event.Type)
	}
}
