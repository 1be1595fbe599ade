package runtime

import (
	"log/slog"
	"testing"

	"duochat/domain"
	"duochat/domain/event"
	"duochat/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCore(t *testing.T, mode Mode, capacity int) *Coordinator {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	rooms := NewRoomManager(log, registry, capacity)
	router := NewBroadcastRouter(log, registry, rooms, testSinkTimeout)
	return NewCoordinator(log, mode, registry, rooms, router, nil, nil)
}

func connect(t *testing.T, c *Coordinator) (domain.ConnectionID, *recordingSink) {
	t.Helper()
	id := domain.ConnectionID(uuid.NewString())
	snk := &recordingSink{}
	require.NoError(t, c.Connect(id, snk))
	return id, snk
}

// byName filters a sink's received events down to one wire name.
func byName(events []event.Outbound, name event.Name) []event.Outbound {
	var out []event.Outbound
	for _, e := range events {
		if e.EventName() == name {
			out = append(out, e)
		}
	}
	return out
}

func TestCoordinator_TwoParty_Join_Then_Full(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeExplicitRoom, 2)

	alice, aliceSink := connect(t, coord)
	bob, bobSink := connect(t, coord)
	carol, carolSink := connect(t, coord)

	// When alice joins r1
	req.True(coord.Join(alice, "r1", "alice"))

	// Then she receives the room snapshot, no rejection, no self-announce
	req.Equal([]event.Outbound{event.RoomState{Users: []string{"alice"}}},
		byName(aliceSink.Events(), event.RoomStateName))
	req.Empty(byName(aliceSink.Events(), event.RoomFullName))
	req.Empty(byName(aliceSink.Events(), event.UserJoinedName))

	// When bob joins r1
	req.True(coord.Join(bob, "r1", "bob"))

	// Then both receive the updated snapshot and alice hears about bob
	req.Contains(aliceSink.Events(), event.RoomState{Users: []string{"alice", "bob"}})
	req.Contains(bobSink.Events(), event.RoomState{Users: []string{"alice", "bob"}})
	req.Equal([]event.Outbound{event.UserJoined{User: "bob", Status: event.StatusOnline}},
		byName(aliceSink.Events(), event.UserJoinedName))
	req.Empty(byName(bobSink.Events(), event.UserJoinedName))

	// When carol tries to join the full room
	req.False(coord.Join(carol, "r1", "carol"))

	// Then only carol is told, and the room is untouched
	req.Equal([]event.Outbound{event.RoomFull{}},
		byName(carolSink.Events(), event.RoomFullName))
	req.Empty(byName(aliceSink.Events(), event.RoomFullName))
	req.Contains(aliceSink.Events(), event.RoomState{Users: []string{"alice", "bob"}})
}

func TestCoordinator_Message_Includes_Sender(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeExplicitRoom, 2)
	alice, aliceSink := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(alice, "r1", "alice")
	coord.Join(bob, "r1", "bob")

	// When alice sends a message
	coord.Message(alice, "hi")

	// Then both parties receive it, sender included
	want := event.ChatMessage{User: "alice", Message: "hi"}
	req.Contains(aliceSink.Events(), want)
	req.Contains(bobSink.Events(), want)
}

func TestCoordinator_Message_Without_Session_Is_Ignored(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeExplicitRoom, 2)
	alice, aliceSink := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(bob, "r1", "bob")

	// When a connection that never joined sends a message
	coord.Message(alice, "hello?")

	// And an unknown connection sends a message
	coord.Message(domain.ConnectionID(uuid.NewString()), "anyone?")

	// Then nothing is broadcast
	req.Empty(byName(aliceSink.Events(), event.ChatMessageName))
	req.Empty(byName(bobSink.Events(), event.ChatMessageName))
}

func TestCoordinator_Typing_Never_Echoes_To_Sender(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeExplicitRoom, 2)
	alice, aliceSink := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(alice, "r1", "alice")
	coord.Join(bob, "r1", "bob")

	// When alice starts and stops typing
	coord.Typing(alice)
	coord.StopTyping(alice)

	// Then only bob sees the indicators
	req.Equal([]event.Outbound{event.Typing{User: "alice"}},
		byName(bobSink.Events(), event.TypingName))
	req.Equal([]event.Outbound{event.StopTyping{User: "alice"}},
		byName(bobSink.Events(), event.StopTypingName))
	req.Empty(byName(aliceSink.Events(), event.TypingName))
	req.Empty(byName(aliceSink.Events(), event.StopTypingName))
}

func TestCoordinator_Disconnect_Removes_Only_The_Leaver(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	rooms := NewRoomManager(log, registry, 2)
	router := NewBroadcastRouter(log, registry, rooms, testSinkTimeout)
	coord := NewCoordinator(log, ModeExplicitRoom, registry, rooms, router, nil, nil)

	alice, _ := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(alice, "r1", "alice")
	coord.Join(bob, "r1", "bob")

	// When alice disconnects
	coord.Disconnect(alice)

	// Then bob hears the departure and stays in the room alone
	req.Equal([]event.Outbound{event.UserLeft{User: "alice", Status: event.StatusOffline}},
		byName(bobSink.Events(), event.UserLeftName))
	req.Equal([]string{"bob"}, rooms.MembersOf("r1"))
	_, ok := registry.Get(alice)
	req.False(ok)

	// When alice disconnects again
	coord.Disconnect(alice)

	// Then nothing else happens (idempotent)
	req.Len(byName(bobSink.Events(), event.UserLeftName), 1)

	// When bob also disconnects, the room is garbage-collected
	coord.Disconnect(bob)
	req.Empty(rooms.MembersOf("r1"))
	req.Equal(domain.OccupancyAvailable, rooms.OccupancyStatus("r1"))
}

func TestCoordinator_Switching_Rooms_Implicitly_Leaves_The_Old_One(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeExplicitRoom, 2)
	alice, aliceSink := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(alice, "r1", "alice")
	coord.Join(bob, "r1", "bob")

	// When alice joins r2 without leaving r1
	req.True(coord.Join(alice, "r2", "alice"))

	// Then r1 hears her leave before anyone hears her arrive
	req.Equal([]event.Outbound{event.UserLeft{User: "alice", Status: event.StatusOffline}},
		byName(bobSink.Events(), event.UserLeftName))
	req.Contains(aliceSink.Events(), event.RoomState{Users: []string{"alice"}})
}

func TestCoordinator_FixedRoom_Greets_Joins_And_Frees_Seats(t *testing.T) {
	req := require.New(t)
	coord := newCore(t, ModeImplicitSingleRoom, 2)

	// Given two connections that join the implicit room
	alice, aliceSink := connect(t, coord)
	req.Equal([]event.Outbound{event.RoomStatus{Status: domain.OccupancyAvailable}},
		byName(aliceSink.Events(), event.RoomStatusName))
	req.True(coord.Join(alice, "", "alice"))

	bob, bobSink := connect(t, coord)
	req.Equal([]event.Outbound{event.RoomStatus{Status: domain.OccupancyAvailable}},
		byName(bobSink.Events(), event.RoomStatusName))
	req.True(coord.Join(bob, "ignored-room-id", "bob"))

	// Then alice heard bob arrive, bob did not hear himself
	req.Equal([]event.Outbound{event.UserJoined{User: "bob", Status: event.StatusOnline}},
		byName(aliceSink.Events(), event.UserJoinedName))
	req.Empty(byName(bobSink.Events(), event.UserJoinedName))

	// When a third connection arrives while the room is full
	carol, carolSink := connect(t, coord)
	req.Equal([]event.Outbound{event.RoomStatus{Status: domain.OccupancyFull}},
		byName(carolSink.Events(), event.RoomStatusName))

	// And its join is rejected
	req.False(coord.Join(carol, "", "carol"))
	req.Equal([]event.Outbound{event.RoomFull{}},
		byName(carolSink.Events(), event.RoomFullName))
	coord.Disconnect(carol)

	// When a chat message flows, everyone connected gets it, sender included
	coord.Message(alice, "hi")
	want := event.Message{User: "alice", Message: "hi"}
	req.Contains(aliceSink.Events(), want)
	req.Contains(bobSink.Events(), want)

	// When alice leaves, a fresh connection is greeted with a free seat
	coord.Disconnect(alice)
	req.Contains(bobSink.Events(), event.UserLeft{User: "alice", Status: event.StatusOffline})
	_, daveSink := connect(t, coord)
	req.Equal([]event.Outbound{event.RoomStatus{Status: domain.OccupancyAvailable}},
		byName(daveSink.Events(), event.RoomStatusName))
}

func TestCoordinator_Moderation_And_Telemetry_Are_Wired(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sanitizer := mocks.NewMockISanitizer(ctrl)

	registry := NewRegistry()
	rooms := NewRoomManager(log, registry, 2)
	router := NewBroadcastRouter(log, registry, rooms, testSinkTimeout)
	telemetry := make(chan event.Event, 16)
	coord := NewCoordinator(log, ModeExplicitRoom, registry, rooms, router, sanitizer, telemetry)

	alice, _ := connect(t, coord)
	bob, bobSink := connect(t, coord)
	coord.Join(alice, "r1", "alice")
	coord.Join(bob, "r1", "bob")

	// Given the sanitizer censors the text
	sanitizer.EXPECT().Sanitize("you idiot").Return("you *****", "en").Times(1)

	// When alice sends the message
	coord.Message(alice, "you idiot")

	// Then the censored text is what reaches the room
	req.Contains(bobSink.Events(),
		event.ChatMessage{User: "alice", Message: "you *****", Lang: "en"})

	// And the telemetry channel saw the whole session
	var types []event.Type
	for len(telemetry) > 0 {
		types = append(types, (<-telemetry).Type)
	}
	req.Contains(types, event.ConnectedType)
	req.Contains(types, event.RoomJoinedType)
	req.Contains(types, event.MessageSentType)
}
