// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

// ConnectionID is the opaque identifier assigned by the transport layer.
// It is unique for the lifetime of a connection.
type ConnectionID string

// Connection is the session state of a single live connection.
// The zero RoomID means the connection has not joined a room yet.
type Connection struct {
	ID          ConnectionID
	DisplayName string
	RoomID      RoomID
}

func (c Connection) InRoom() bool {
	return c.RoomID != ""
}
