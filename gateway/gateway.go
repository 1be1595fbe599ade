// Package gateway adapts websocket connections to the broadcast core.
// It carries no business state: every socket is reduced to an opaque
// connection id and a sink, and the core is driven purely through the
// coordinator's typed operations.
package gateway

import (
	"log/slog"
	"net/http"

	"duochat/domain"
	"duochat/runtime"
	"duochat/sink"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Gateway struct {
	log         *slog.Logger
	coordinator *runtime.Coordinator
	upgrader    websocket.Upgrader
	bufferSize  int
}

func New(log *slog.Logger, coordinator *runtime.Coordinator, bufferSize int) *Gateway {
	return &Gateway{
		log:         log,
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		bufferSize: bufferSize,
	}
}

// ServeHTTP upgrades the request and runs the connection until the peer
// goes away. A read error of any kind becomes a synthetic disconnect, so
// a dropped transport and a clean close take the same path through the core.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("Websocket upgrade failed", "error", err)
		return
	}

	id := domain.ConnectionID(uuid.NewString())
	snk := sink.NewChannel(g.bufferSize)

	if err := g.coordinator.Connect(id, snk); err != nil {
		g.log.Error("Connection rejected", "id", string(id), "error", err)
		_ = conn.Close()
		return
	}
	g.log.Debug("Connection established", "id", string(id))

	done := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		g.writePump(conn, snk, done)
	}()

	g.readPump(conn, id)

	g.coordinator.Disconnect(id)
	close(done)
	<-writerDone
	_ = conn.Close()
	g.log.Debug("Connection closed", "id", string(id))
}

func (g *Gateway) readPump(conn *websocket.Conn, id domain.ConnectionID) {
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if g.dispatch(id, frame) {
			return
		}
	}
}

// dispatch routes one inbound frame. Returns true when the connection
// must be dropped (fixed-room mode rejects a join against a full room by
// closing the socket after the room-full notice).
func (g *Gateway) dispatch(id domain.ConnectionID, frame Frame) bool {
	switch frame.Event {
	case joinEvent:
		p, err := decodePayload[JoinPayload](frame.Data)
		if err != nil {
			g.log.Debug("Dropping invalid join frame", "id", string(id), "error", err)
			return false
		}
		if g.coordinator.Mode() == runtime.ModeExplicitRoom && p.RoomID == "" {
			g.log.Debug("Dropping join without room id", "id", string(id))
			return false
		}
		admitted := g.coordinator.Join(id, domain.RoomID(p.RoomID), p.DisplayName)
		return !admitted && g.coordinator.Mode() == runtime.ModeImplicitSingleRoom
	case messageEvent:
		p, err := decodePayload[MessagePayload](frame.Data)
		if err != nil {
			g.log.Debug("Dropping invalid message frame", "id", string(id), "error", err)
			return false
		}
		g.coordinator.Message(id, p.Text)
	case typingEvent:
		g.coordinator.Typing(id)
	case stopTypingEvent:
		g.coordinator.StopTyping(id)
	default:
		g.log.Debug("Unknown inbound event", "event", frame.Event)
	}
	return false
}

// writePump forwards the sink's events onto the wire. On shutdown it
// flushes what is already buffered so a rejection notice still reaches
// the peer before the socket closes.
func (g *Gateway) writePump(conn *websocket.Conn, snk *sink.Channel, done <-chan struct{}) {
	for {
		select {
		case e := <-snk.Events:
			frame, err := encodeFrame(e)
			if err != nil {
				g.log.Error("Failed to encode outbound event", "error", err)
				continue
			}
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		case <-done:
			for {
				select {
				case e := <-snk.Events:
					if frame, err := encodeFrame(e); err == nil {
						_ = conn.WriteJSON(frame)
					}
				default:
					return
				}
			}
		}
	}
}
