//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"duochat/domain"
	"duochat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one connection's outbound delivery channel.
// Consume must never block the caller beyond ctx.
type EventSink interface {
	Consume(ctx context.Context, e event.Outbound) error
}

// IRegistry is the authoritative table of live connections: session
// metadata plus the sink the transport registered for each connection.
type IRegistry interface {
	Register(id domain.ConnectionID, sink EventSink) error
	SetSession(id domain.ConnectionID, displayName string, roomID domain.RoomID)
	ClearRoom(id domain.ConnectionID)
	Get(id domain.ConnectionID) (domain.Connection, bool)
	Remove(id domain.ConnectionID)
	Sink(id domain.ConnectionID) (EventSink, bool)
	AllSinks(except ...domain.ConnectionID) []EventSink
}

// IRooms owns room lifecycle and membership.
type IRooms interface {
	Join(roomID domain.RoomID, id domain.ConnectionID, displayName string) domain.JoinResult
	Leave(id domain.ConnectionID) domain.LeaveResult
	MembersOf(roomID domain.RoomID) []string
	MemberIDs(roomID domain.RoomID) []domain.ConnectionID
	OccupancyStatus(roomID domain.RoomID) domain.Occupancy
}

// ISanitizer cleans chat text before it is broadcast and reports the
// detected language of the original text, empty when undetermined.
type ISanitizer interface {
	Sanitize(text string) (clean string, lang string)
}

// IRouter computes the recipient set for an event and dispatches it.
// Delivery is fire-and-forget: no acknowledgment, no retry, and targets
// that disconnected in the meantime are silently skipped.
type IRouter interface {
	ToRoom(roomID domain.RoomID, e event.Outbound)
	ToRoomExceptSender(roomID domain.RoomID, sender domain.ConnectionID, e event.Outbound)
	ToAll(e event.Outbound)
	ToAllExceptSender(sender domain.ConnectionID, e event.Outbound)
	ToConnection(id domain.ConnectionID, e event.Outbound)
}
