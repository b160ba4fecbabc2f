// Package proto defines the line protocol spoken on the wire: the
// slash-command grammar for inbound lines and the formatting of
// outbound lines. It is pure and holds no state.
package proto

import (
	"strings"
	"unicode"
)

// ActionKind classifies one inbound line.
type ActionKind int

const (
	// ActionMessage is a plain chat line for the client's current room.
	ActionMessage ActionKind = iota
	// ActionListRooms asks for the list of known rooms.
	ActionListRooms
	// ActionJoin asks to move into another room.
	ActionJoin
	// ActionQuit ends the session.
	ActionQuit
	// ActionUnknown is a slash command the server does not know.
	ActionUnknown
	// ActionInvalid is a recognized command with a bad argument.
	ActionInvalid
)

// Action is the parsed form of one inbound line.
type Action struct {
	Kind ActionKind
	Room string // ActionJoin: target room
	Text string // ActionMessage: chat text, may be empty
	Word string // ActionUnknown: command word without the slash
	Err  string // ActionInvalid: message for the client
}

// Parse maps a raw line (terminator already stripped) to an Action.
// Command words match case-insensitively; chat text is passed through
// untouched, including empty lines.
func Parse(line string) Action {
	if !strings.HasPrefix(line, "/") {
		return Action{Kind: ActionMessage, Text: line}
	}

	word, arg := splitCommand(line[1:])
	switch strings.ToLower(word) {
	case "rooms":
		return Action{Kind: ActionListRooms}
	case "join":
		if arg == "" {
			return Action{Kind: ActionInvalid, Err: "room name required"}
		}
		return Action{Kind: ActionJoin, Room: arg}
	case "quit":
		return Action{Kind: ActionQuit}
	default:
		return Action{Kind: ActionUnknown, Word: word}
	}
}

// splitCommand separates the command word from its argument text. The
// argument keeps interior whitespace but is trimmed at both ends.
func splitCommand(rest string) (word, arg string) {
	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return rest, ""
	}
	return rest[:i], strings.TrimSpace(rest[i+1:])
}
