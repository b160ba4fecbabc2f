package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	ts := time.Date(2024, 3, 1, 13, 37, 42, 0, time.UTC)
	require.Equal(t, "[13:37:42] alice: hello", FormatMessage("alice", "hello", ts))
}

func TestFormatRoomList(t *testing.T) {
	require.Equal(t, "rooms: default, lobby", FormatRoomList([]string{"default", "lobby"}))
	require.Equal(t, "rooms: ", FormatRoomList(nil))
}

func TestFormatUnknown(t *testing.T) {
	require.Equal(t, `error: unknown command "/dance"`, FormatUnknown("dance"))
}

func TestFormatNotices(t *testing.T) {
	require.Equal(t, "* alice joined lobby", FormatJoined("alice", "lobby"))
	require.Equal(t, "* alice left lobby", FormatLeft("alice", "lobby"))
}
