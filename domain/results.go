package domain

// JoinResult reports the outcome of a room admission attempt.
// Full is a signaled rejection, not an error: the room was at capacity
// and no state was mutated.
type JoinResult struct {
	Full    bool
	Members []string // ordered display names after the join, empty when Full

	// Evicted is set when the join displaced a previous membership of the
	// same connection in another room (implicit leave-then-join policy).
	Evicted *LeaveResult
}

// LeaveResult reports a departure. Left is false for connections that
// were never in a room, which is benign (e.g. disconnect before join).
type LeaveResult struct {
	Left        bool
	RoomID      RoomID
	DisplayName string
	Remaining   int
}
