package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Action
	}{
		{"plain message", "hello there", Action{Kind: ActionMessage, Text: "hello there"}},
		{"empty line is an empty message", "", Action{Kind: ActionMessage, Text: ""}},
		{"message with leading spaces kept", "  indented", Action{Kind: ActionMessage, Text: "  indented"}},
		{"rooms", "/rooms", Action{Kind: ActionListRooms}},
		{"rooms ignores argument", "/rooms whatever", Action{Kind: ActionListRooms}},
		{"rooms is case-insensitive", "/ROOMS", Action{Kind: ActionListRooms}},
		{"join", "/join lobby", Action{Kind: ActionJoin, Room: "lobby"}},
		{"join trims argument", "/join   lobby  ", Action{Kind: ActionJoin, Room: "lobby"}},
		{"join keeps interior spaces", "/join the lobby", Action{Kind: ActionJoin, Room: "the lobby"}},
		{"join mixed case", "/Join lobby", Action{Kind: ActionJoin, Room: "lobby"}},
		{"join without argument", "/join", Action{Kind: ActionInvalid, Err: "room name required"}},
		{"join with blank argument", "/join   ", Action{Kind: ActionInvalid, Err: "room name required"}},
		{"quit", "/quit", Action{Kind: ActionQuit}},
		{"quit uppercase", "/QUIT", Action{Kind: ActionQuit}},
		{"unknown command", "/dance", Action{Kind: ActionUnknown, Word: "dance"}},
		{"bare slash", "/", Action{Kind: ActionUnknown, Word: ""}},
		{"slash with space", "/ hello", Action{Kind: ActionUnknown, Word: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Parse(tc.line))
		})
	}
}
