package runtime

import (
	"context"
	"log/slog"
	"time"

	"duochat/contract"
	"duochat/domain"
	"duochat/domain/event"
)

// Ensure *BroadcastRouter implements the contract.IRouter interface at
// compile time.
var _ contract.IRouter = (*BroadcastRouter)(nil)

// BroadcastRouter resolves an event's recipient set and hands the event
// to each recipient's sink. It never mutates membership: recipients come
// from RoomManager and Registry snapshots taken at dispatch time.
//
// Delivery is fire-and-forget. A sink that is gone by delivery time is
// silently skipped, a slow sink is cut off by the per-sink timeout, and
// neither case stalls the other recipients.
type BroadcastRouter struct {
	log         *slog.Logger
	registry    contract.IRegistry
	rooms       contract.IRooms
	sinkTimeout time.Duration
}

func NewBroadcastRouter(log *slog.Logger, registry contract.IRegistry,
	rooms contract.IRooms, sinkTimeout time.Duration) *BroadcastRouter {
	return &BroadcastRouter{
		log:         log,
		registry:    registry,
		rooms:       rooms,
		sinkTimeout: sinkTimeout,
	}
}

// ToRoom delivers to every current member of the room, sender included.
func (r *BroadcastRouter) ToRoom(roomID domain.RoomID, e event.Outbound) {
	r.deliver(r.roomSinks(roomID, ""), e)
}

// ToRoomExceptSender delivers to every member but the originator. Used
// for typing indicators and join announcements so a connection never
// receives its own transient signal.
func (r *BroadcastRouter) ToRoomExceptSender(roomID domain.RoomID, sender domain.ConnectionID, e event.Outbound) {
	r.deliver(r.roomSinks(roomID, sender), e)
}

// ToAll delivers to every registered connection, joined or not.
func (r *BroadcastRouter) ToAll(e event.Outbound) {
	r.deliver(r.registry.AllSinks(), e)
}

// ToAllExceptSender is the global counterpart of ToRoomExceptSender.
func (r *BroadcastRouter) ToAllExceptSender(sender domain.ConnectionID, e event.Outbound) {
	r.deliver(r.registry.AllSinks(sender), e)
}

// ToConnection unicasts, e.g. a room-full rejection or a room-status notice.
func (r *BroadcastRouter) ToConnection(id domain.ConnectionID, e event.Outbound) {
	sink, ok := r.registry.Sink(id)
	if !ok {
		return
	}
	r.deliver([]contract.EventSink{sink}, e)
}

// roomSinks resolves current room members into their sinks, skipping
// the excluded sender and members that already disconnected.
func (r *BroadcastRouter) roomSinks(roomID domain.RoomID, except domain.ConnectionID) []contract.EventSink {
	var sinks []contract.EventSink
	for _, id := range r.rooms.MemberIDs(roomID) {
		if id == except {
			continue
		}
		if sink, ok := r.registry.Sink(id); ok {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

func (r *BroadcastRouter) deliver(sinks []contract.EventSink, e event.Outbound) {
	for _, sink := range sinks {
		ctx, cancel := context.WithTimeout(context.Background(), r.sinkTimeout)
		if err := sink.Consume(ctx, e); err != nil {
			r.log.Debug("Sink delivery dropped", "event", string(e.EventName()), "error", err)
		}
		cancel()
	}
}
