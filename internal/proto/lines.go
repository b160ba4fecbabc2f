package proto

import (
	"fmt"
	"strings"
	"time"
)

// Fixed server lines.
const (
	LinePrompt    = "Enter a username:"
	LineEmptyName = "error: username must not be empty"
	LineShutdown  = "server is shutting down"
	LineGoodbye   = "bye"
)

// FormatWelcome greets a freshly registered user.
func FormatWelcome(user, room string) string {
	return fmt.Sprintf("Welcome, %s! You are in room %q. Commands: /rooms, /join <room>, /quit", user, room)
}

// FormatMessage renders a chat message for delivery.
func FormatMessage(from, text string, ts time.Time) string {
	return fmt.Sprintf("[%s] %s: %s", ts.Format("15:04:05"), from, text)
}

// FormatJoined renders a join notice.
func FormatJoined(user, room string) string {
	return fmt.Sprintf("* %s joined %s", user, room)
}

// FormatLeft renders a leave notice.
func FormatLeft(user, room string) string {
	return fmt.Sprintf("* %s left %s", user, room)
}

// FormatRoomList renders the /rooms response as a single line.
func FormatRoomList(names []string) string {
	return "rooms: " + strings.Join(names, ", ")
}

// FormatError renders an error line for the erring client only.
func FormatError(msg string) string {
	return "error: " + msg
}

// FormatUnknown renders the response to an unrecognized command word.
func FormatUnknown(word string) string {
	return fmt.Sprintf("error: unknown command %q", "/"+word)
}
