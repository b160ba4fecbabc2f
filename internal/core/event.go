package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomMessage notifies a client about a chat message in its room.
	EventRoomMessage EventKind = iota
	// EventUserJoined notifies room members that a user joined.
	EventUserJoined
	// EventUserLeft notifies room members that a user left.
	EventUserLeft
	// EventRoomList delivers a snapshot of room names to one client.
	EventRoomList
	// EventError notifies a client about a domain error.
	EventError
	// EventShutdown tells a client the server is going away.
	EventShutdown
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Room    string
	User    string
	Message Message
	Rooms   []string // for EventRoomList
	Error   *CoreError
}
