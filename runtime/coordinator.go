package runtime

import (
	"log/slog"

	"duochat/contract"
	"duochat/domain"
	"duochat/domain/event"
)

// Mode selects how inbound events are scoped to rooms. The two modes are
// configurations of the same core, not different designs.
type Mode string

const (
	// ModeExplicitRoom: clients address rooms by caller-supplied ids.
	ModeExplicitRoom Mode = "explicit-room"
	// ModeImplicitSingleRoom: one well-known room shared by everyone;
	// room ids in the inbound contract are ignored.
	ModeImplicitSingleRoom Mode = "implicit-single-room"
)

// implicitRoom is the well-known id of the single room of fixed-room mode.
const implicitRoom domain.RoomID = "default"

// Coordinator translates inbound connection events into registry and room
// mutations, then into the outbound event sequence each mode prescribes.
// All broadcasts happen after the membership mutation has committed.
type Coordinator struct {
	log       *slog.Logger
	mode      Mode
	registry  contract.IRegistry
	rooms     contract.IRooms
	router    contract.IRouter
	sanitizer contract.ISanitizer // nil disables moderation
	telemetry chan<- event.Event  // nil disables telemetry
}

func NewCoordinator(log *slog.Logger, mode Mode, registry contract.IRegistry,
	rooms contract.IRooms, router contract.IRouter,
	sanitizer contract.ISanitizer, telemetry chan<- event.Event) *Coordinator {
	return &Coordinator{
		log:       log,
		mode:      mode,
		registry:  registry,
		rooms:     rooms,
		router:    router,
		sanitizer: sanitizer,
		telemetry: telemetry,
	}
}

func (c *Coordinator) Mode() Mode { return c.mode }

// Connect registers the connection. In fixed-room mode the new socket is
// greeted with the occupancy of the implicit room before it joins.
func (c *Coordinator) Connect(id domain.ConnectionID, sink contract.EventSink) error {
	if err := c.registry.Register(id, sink); err != nil {
		return err
	}
	if c.mode == ModeImplicitSingleRoom {
		c.router.ToConnection(id, event.RoomStatus{Status: c.rooms.OccupancyStatus(implicitRoom)})
	}
	c.emit(event.ConnectedType, nil)
	return nil
}

// Join admits the connection into a room and announces it. Returns false
// when the room was full; in fixed-room mode the transport should then
// drop the socket, there is nothing else it can do.
func (c *Coordinator) Join(id domain.ConnectionID, roomID domain.RoomID, displayName string) bool {
	if c.mode == ModeImplicitSingleRoom {
		roomID = implicitRoom
	}

	res := c.rooms.Join(roomID, id, displayName)

	// Implicit leave-then-join: the displaced room hears the departure
	// before anyone hears the arrival.
	if res.Evicted != nil && res.Evicted.Left {
		c.broadcastLeft(id, *res.Evicted)
	}

	if res.Full {
		c.router.ToConnection(id, event.RoomFull{})
		c.emit(event.RoomRejectedType, event.PresencePayload{User: displayName, Room: string(roomID)})
		return false
	}

	joined := event.UserJoined{User: displayName, Status: event.StatusOnline}
	switch c.mode {
	case ModeExplicitRoom:
		c.router.ToRoom(roomID, event.RoomState{Users: res.Members})
		c.router.ToRoomExceptSender(roomID, id, joined)
	case ModeImplicitSingleRoom:
		c.router.ToAllExceptSender(id, joined)
	}

	c.emit(event.RoomJoinedType, event.PresencePayload{User: displayName, Room: string(roomID)})
	return true
}

// Message relays chat text to the sender's broadcast scope, sender
// included. Text passes through moderation first. A connection without a
// session is ignored, it either never joined or already disconnected.
func (c *Coordinator) Message(id domain.ConnectionID, text string) {
	conn, ok := c.registry.Get(id)
	if !ok || conn.DisplayName == "" {
		return
	}

	lang := ""
	if c.sanitizer != nil {
		text, lang = c.sanitizer.Sanitize(text)
	}

	switch c.mode {
	case ModeExplicitRoom:
		if !conn.InRoom() {
			return
		}
		c.router.ToRoom(conn.RoomID, event.ChatMessage{User: conn.DisplayName, Message: text, Lang: lang})
	case ModeImplicitSingleRoom:
		c.router.ToAll(event.Message{User: conn.DisplayName, Message: text, Lang: lang})
	}

	c.emit(event.MessageSentType, nil)
}

// Typing relays a typing indicator to everyone in scope but the sender.
func (c *Coordinator) Typing(id domain.ConnectionID) {
	c.relayTyping(id, func(user string) event.Outbound {
		return event.Typing{User: user}
	})
}

// StopTyping relays the end of a typing indicator.
func (c *Coordinator) StopTyping(id domain.ConnectionID) {
	c.relayTyping(id, func(user string) event.Outbound {
		return event.StopTyping{User: user}
	})
}

func (c *Coordinator) relayTyping(id domain.ConnectionID, build func(user string) event.Outbound) {
	conn, ok := c.registry.Get(id)
	if !ok {
		return
	}

	roomID := conn.RoomID
	if c.mode == ModeImplicitSingleRoom {
		if conn.DisplayName == "" {
			return
		}
		roomID = implicitRoom
	}
	if roomID == "" {
		return
	}

	c.router.ToRoomExceptSender(roomID, id, build(conn.DisplayName))
	c.emit(event.TypingRelayType, nil)
}

// Disconnect tears the connection down. Room cleanup happens before the
// registry entry goes away; calling it twice is harmless and produces at
// most one user-left broadcast.
func (c *Coordinator) Disconnect(id domain.ConnectionID) {
	res := c.rooms.Leave(id)
	c.registry.Remove(id)

	if !res.Left {
		return
	}
	c.broadcastLeft(id, res)
	c.emit(event.RoomLeftType, event.PresencePayload{User: res.DisplayName, Room: string(res.RoomID)})
}

func (c *Coordinator) broadcastLeft(id domain.ConnectionID, res domain.LeaveResult) {
	left := event.UserLeft{User: res.DisplayName, Status: event.StatusOffline}
	switch c.mode {
	case ModeExplicitRoom:
		// The member is already out of the room, so this cannot echo
		// back to the leaver. An emptied room has no recipients left.
		c.router.ToRoom(res.RoomID, left)
	case ModeImplicitSingleRoom:
		c.router.ToAllExceptSender(id, left)
	}
}

// emit pushes a telemetry event without ever blocking the event path.
func (c *Coordinator) emit(t event.Type, payload any) {
	if c.telemetry == nil {
		return
	}
	select {
	case c.telemetry <- event.Event{Type: t, Payload: payload}:
	default:
		c.log.Debug("Telemetry event lost", "type", string(t))
	}
}
