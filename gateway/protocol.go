package gateway

import (
	"encoding/json"

	"duochat/domain/event"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Inbound event names. Outbound names live with the event types.
const (
	joinEvent       = "join"
	messageEvent    = "message"
	typingEvent     = "typing"
	stopTypingEvent = "stop-typing"
)

// Frame is the envelope of every wire message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinPayload struct {
	RoomID      string `json:"roomId" validate:"omitempty,min=1,max=64"`
	DisplayName string `json:"displayName" validate:"required,min=1,max=32"`
}

type MessagePayload struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// decodePayload unmarshals and validates an inbound payload. Invalid
// frames are dropped by the caller, never answered.
func decodePayload[T any](data json.RawMessage) (T, error) {
	var p T
	if err := json.Unmarshal(data, &p); err != nil {
		return p, err
	}
	if err := validate.Struct(p); err != nil {
		return p, err
	}
	return p, nil
}

func encodeFrame(e event.Outbound) (Frame, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Event: string(e.EventName()), Data: data}, nil
}
