package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_Members_Keep_Insertion_Order(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1")

	room.Add("c1", "alice")
	room.Add("c2", "bob")
	room.Add("c3", "carol")

	req.Equal(3, room.Size())
	req.Equal([]string{"alice", "bob", "carol"}, room.DisplayNames())
	req.Equal([]ConnectionID{"c1", "c2", "c3"}, room.ConnectionIDs())

	// Removing from the middle keeps the relative order of the rest
	req.True(room.Remove("c2"))
	req.Equal([]string{"alice", "carol"}, room.DisplayNames())

	// Removing an unknown member changes nothing
	req.False(room.Remove("c2"))
	req.Equal(2, room.Size())
}

func TestRoom_Has(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1")
	room.Add("c1", "alice")

	req.True(room.Has("c1"))
	req.False(room.Has("c2"))
}

func TestConnection_InRoom(t *testing.T) {
	req := require.New(t)

	req.False(Connection{ID: "c1"}.InRoom())
	req.True(Connection{ID: "c1", RoomID: "r1"}.InRoom())
}
