package domain

import "github.com/samber/lo"

type RoomID string

// Occupancy reflects whether a room can still admit a member.
// The values double as the wire representation of the room-status event.
type Occupancy string

const (
	OccupancyAvailable Occupancy = "available"
	OccupancyFull      Occupancy = "full"
)

type Member struct {
	Connection  ConnectionID
	DisplayName string
}

// Room is a named, capacity-bounded group of connections sharing a
// broadcast scope. Members keep their insertion order so that room-state
// snapshots are deterministic.
type Room struct {
	ID      RoomID
	members []Member
}

func NewRoom(id RoomID) *Room {
	return &Room{ID: id}
}

func (r *Room) Add(id ConnectionID, displayName string) {
	r.members = append(r.members, Member{Connection: id, DisplayName: displayName})
}

// Remove deletes the member with the given connection id, keeping the
// order of the remaining members. Returns false if the id was not a member.
func (r *Room) Remove(id ConnectionID) bool {
	for i, m := range r.members {
		if m.Connection == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) Has(id ConnectionID) bool {
	return lo.ContainsBy(r.members, func(m Member) bool {
		return m.Connection == id
	})
}

func (r *Room) Size() int {
	return len(r.members)
}

// DisplayNames returns the member names in join order.
func (r *Room) DisplayNames() []string {
	return lo.Map(r.members, func(m Member, _ int) string {
		return m.DisplayName
	})
}

// ConnectionIDs returns the member connection ids in join order.
func (r *Room) ConnectionIDs() []ConnectionID {
	return lo.Map(r.members, func(m Member, _ int) ConnectionID {
		return m.Connection
	})
}
