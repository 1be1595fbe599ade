package runtime

import (
	"log/slog"
	"sync"

	"duochat/contract"
	"duochat/domain"
)

// RoomManager owns the room table and all membership mutations. Every
// mutation runs under one mutex so a capacity check and the insert it
// guards are atomic with respect to concurrent joins: two simultaneous
// joins against a room at capacity-minus-one can never both succeed.
//
// A coarse guard was chosen over a worker per room: room counts are small
// and every operation is an in-memory map mutation, so contention is not
// a concern and the invariants are much easier to audit.
type RoomManager struct {
	mu       sync.Mutex
	log      *slog.Logger
	registry contract.IRegistry
	rooms    map[domain.RoomID]*domain.Room
	capacity int
}

func NewRoomManager(log *slog.Logger, registry contract.IRegistry, capacity int) *RoomManager {
	return &RoomManager{
		log:      log,
		registry: registry,
		rooms:    make(map[domain.RoomID]*domain.Room),
		capacity: capacity,
	}
}

// Join admits a connection into a room, creating the room on first use.
// A join against a full room returns Full and mutates nothing.
//
// A connection already in another room is implicitly removed from it once
// admission is certain; the displaced membership is reported via Evicted
// so the caller can emit the matching presence event. Re-joining the
// current room counts as leave-then-join.
func (m *RoomManager) Join(roomID domain.RoomID, id domain.ConnectionID, displayName string) domain.JoinResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	var evicted *domain.LeaveResult
	conn, known := m.registry.Get(id)

	// Rejoining the same room frees the member's own slot before the
	// capacity check, otherwise the connection would collide with itself.
	if known && conn.RoomID == roomID {
		res := m.leaveLocked(conn)
		evicted = &res
	}

	if room, ok := m.rooms[roomID]; ok && room.Size() >= m.capacity {
		return domain.JoinResult{Full: true, Evicted: evicted}
	}

	if known && conn.InRoom() && conn.RoomID != roomID {
		res := m.leaveLocked(conn)
		evicted = &res
	}

	room, ok := m.rooms[roomID]
	if !ok {
		room = domain.NewRoom(roomID)
		m.rooms[roomID] = room
		m.log.Debug("Room created", "room", string(roomID))
	}

	room.Add(id, displayName)
	m.registry.SetSession(id, displayName, roomID)

	return domain.JoinResult{Members: room.DisplayNames(), Evicted: evicted}
}

// Leave removes the connection from its current room, if any. Rooms are
// garbage-collected synchronously when their last member departs.
func (m *RoomManager) Leave(id domain.ConnectionID) domain.LeaveResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, ok := m.registry.Get(id)
	if !ok || !conn.InRoom() {
		return domain.LeaveResult{}
	}
	return m.leaveLocked(conn)
}

// leaveLocked detaches conn from its room and deletes the room when it
// empties. Caller must hold m.mu.
func (m *RoomManager) leaveLocked(conn domain.Connection) domain.LeaveResult {
	room, ok := m.rooms[conn.RoomID]
	if !ok {
		m.registry.ClearRoom(conn.ID)
		return domain.LeaveResult{}
	}

	room.Remove(conn.ID)
	m.registry.ClearRoom(conn.ID)

	remaining := room.Size()
	if remaining == 0 {
		delete(m.rooms, conn.RoomID)
		m.log.Debug("Room deleted", "room", string(conn.RoomID))
	}

	return domain.LeaveResult{
		Left:        true,
		RoomID:      conn.RoomID,
		DisplayName: conn.DisplayName,
		Remaining:   remaining,
	}
}

// MembersOf returns the ordered display names of a room, empty for an
// unknown room. Taken under the mutation lock so a snapshot triggered by
// a join reflects that join.
func (m *RoomManager) MembersOf(roomID domain.RoomID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil
	}
	return room.DisplayNames()
}

// MemberIDs returns the ordered connection ids of a room.
func (m *RoomManager) MemberIDs(roomID domain.RoomID) []domain.ConnectionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil
	}
	return room.ConnectionIDs()
}

// OccupancyStatus reports whether a room can still admit a member.
// An unknown room is available: it will be created on the first join.
func (m *RoomManager) OccupancyStatus(roomID domain.RoomID) domain.Occupancy {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if ok && room.Size() >= m.capacity {
		return domain.OccupancyFull
	}
	return domain.OccupancyAvailable
}
