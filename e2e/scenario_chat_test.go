package e2e

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"duochat/gateway"
	"duochat/runtime"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, mode runtime.Mode, capacity int, cfg Config) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	rooms := runtime.NewRoomManager(log, registry, capacity)
	router := runtime.NewBroadcastRouter(log, registry, rooms, cfg.SinkTimeout)
	coordinator := runtime.NewCoordinator(log, mode, registry, rooms, router, nil, nil)

	server := httptest.NewServer(gateway.New(log, coordinator, cfg.ConnectionBufferSize))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	frame := gateway.Frame{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		frame.Data = data
	}
	require.NoError(t, conn.WriteJSON(frame))
}

func readFrame(t *testing.T, conn *websocket.Conn, cfg Config) gateway.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)))
	var frame gateway.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func users(t *testing.T, frame gateway.Frame) []string {
	t.Helper()
	var payload struct {
		Users []string `json:"users"`
	}
	require.NoError(t, json.Unmarshal(frame.Data, &payload))
	return payload.Users
}

func TestScenario_TwoParty_Room_Over_Websocket(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	server := startServer(t, runtime.ModeExplicitRoom, 2, cfg)

	// Given alice joins r1
	alice := dial(t, server)
	send(t, alice, "join", map[string]string{"roomId": "r1", "displayName": "alice"})

	frame := readFrame(t, alice, cfg)
	req.Equal("room-state", frame.Event)
	req.Equal([]string{"alice"}, users(t, frame))

	// When bob joins the same room
	bob := dial(t, server)
	send(t, bob, "join", map[string]string{"roomId": "r1", "displayName": "bob"})

	// Then bob receives the snapshot and alice both the snapshot and the announce
	frame = readFrame(t, bob, cfg)
	req.Equal("room-state", frame.Event)
	req.Equal([]string{"alice", "bob"}, users(t, frame))

	frame = readFrame(t, alice, cfg)
	req.Equal("room-state", frame.Event)
	req.Equal([]string{"alice", "bob"}, users(t, frame))

	frame = readFrame(t, alice, cfg)
	req.Equal("user-joined", frame.Event)
	req.JSONEq(`{"user":"bob","status":"online"}`, string(frame.Data))

	// When a third connection tries the full room
	carol := dial(t, server)
	send(t, carol, "join", map[string]string{"roomId": "r1", "displayName": "carol"})

	frame = readFrame(t, carol, cfg)
	req.Equal("room-full", frame.Event)

	// When alice sends a message, both parties receive it, sender included
	send(t, alice, "message", map[string]string{"text": "hi"})

	frame = readFrame(t, alice, cfg)
	req.Equal("chat-message", frame.Event)
	req.JSONEq(`{"user":"alice","message":"hi"}`, string(frame.Data))

	frame = readFrame(t, bob, cfg)
	req.Equal("chat-message", frame.Event)

	// When alice starts typing, only bob sees it
	send(t, alice, "typing", nil)
	frame = readFrame(t, bob, cfg)
	req.Equal("typing", frame.Event)
	req.JSONEq(`{"user":"alice"}`, string(frame.Data))

	// When alice disconnects, bob hears the departure
	req.NoError(alice.Close())
	frame = readFrame(t, bob, cfg)
	req.Equal("user-left", frame.Event)
	req.JSONEq(`{"user":"alice","status":"offline"}`, string(frame.Data))
}

func TestScenario_FixedRoom_Status_And_ForceDisconnect(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	server := startServer(t, runtime.ModeImplicitSingleRoom, 1, cfg)

	// Given alice takes the only seat
	alice := dial(t, server)
	frame := readFrame(t, alice, cfg)
	req.Equal("room-status", frame.Event)
	req.JSONEq(`{"status":"available"}`, string(frame.Data))
	send(t, alice, "join", map[string]string{"displayName": "alice"})

	// When bob connects, the room is already full
	bob := dial(t, server)
	frame = readFrame(t, bob, cfg)
	req.Equal("room-status", frame.Event)
	req.JSONEq(`{"status":"full"}`, string(frame.Data))

	// And his join is rejected, then the socket is dropped
	send(t, bob, "join", map[string]string{"displayName": "bob"})
	frame = readFrame(t, bob, cfg)
	req.Equal("room-full", frame.Event)

	req.NoError(bob.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)))
	var discarded gateway.Frame
	req.Error(bob.ReadJSON(&discarded))

	// When alice leaves, the seat frees up for the next connection.
	// No require inside the polling closure: it runs on another goroutine.
	req.NoError(alice.Close())
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	req.Eventually(func() bool {
		carol, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return false
		}
		defer carol.Close()
		if err := carol.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)); err != nil {
			return false
		}
		var frame gateway.Frame
		if err := carol.ReadJSON(&frame); err != nil {
			return false
		}
		var payload struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return false
		}
		return payload.Status == "available"
	}, 5*time.Second, 50*time.Millisecond)
}
