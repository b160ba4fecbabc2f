package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSendMessage delivers a chat message to the client's current room.
	CommandSendMessage CommandKind = iota
	// CommandJoinRoom moves the client into another room, creating it if absent.
	CommandJoinRoom
	// CommandListRooms asks for a snapshot of all known room names.
	CommandListRooms
)

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	Room    string
	Message Message
}
