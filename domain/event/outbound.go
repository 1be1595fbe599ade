package event

import "duochat/domain"

// Name is the wire name of an outbound event.
type Name string

const (
	RoomStatusName  Name = "room-status"
	RoomFullName    Name = "room-full"
	RoomStateName   Name = "room-state"
	UserJoinedName  Name = "user-joined"
	UserLeftName    Name = "user-left"
	ChatMessageName Name = "chat-message"
	MessageName     Name = "message"
	TypingName      Name = "typing"
	StopTypingName  Name = "stop-typing"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Outbound is an event routed to one or more connections. The struct
// itself is the wire payload; EventName picks the frame name.
type Outbound interface {
	EventName() Name
}

// RoomStatus is unicast once on connect in fixed-room mode, before the
// client has joined, so it can render a waiting screen or a full notice.
type RoomStatus struct {
	Status domain.Occupancy `json:"status"`
}

func (RoomStatus) EventName() Name { return RoomStatusName }

// RoomFull is the unicast rejection of a join against a full room.
type RoomFull struct{}

func (RoomFull) EventName() Name { return RoomFullName }

// RoomState is the full ordered member snapshot, broadcast to the whole
// room after each successful join in multi-room mode.
type RoomState struct {
	Users []string `json:"users"`
}

func (RoomState) EventName() Name { return RoomStateName }

type UserJoined struct {
	User   string `json:"user"`
	Status string `json:"status"`
}

func (UserJoined) EventName() Name { return UserJoinedName }

type UserLeft struct {
	User   string `json:"user"`
	Status string `json:"status"`
}

func (UserLeft) EventName() Name { return UserLeftName }

// ChatMessage carries sanitized chat text to a room, sender included.
// Lang is the detected language of the original text, empty when unknown.
type ChatMessage struct {
	User    string `json:"user"`
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
}

func (ChatMessage) EventName() Name { return ChatMessageName }

// Message is the fixed-room rendition of ChatMessage: same payload,
// different wire name because that mode predates room scoping.
type Message struct {
	User    string `json:"user"`
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
}

func (Message) EventName() Name { return MessageName }

type Typing struct {
	User string `json:"user"`
}

func (Typing) EventName() Name { return TypingName }

type StopTyping struct {
	User string `json:"user"`
}

func (StopTyping) EventName() Name { return StopTypingName }
