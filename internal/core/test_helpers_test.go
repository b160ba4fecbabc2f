package core

import (
	"context"
	"testing"
	"time"
)

func startHub(t *testing.T, defaultRoom string, notices bool) *Hub {
	t.Helper()

	hub := NewHub(defaultRoom, notices, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind, wait time.Duration) {
	t.Helper()

	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// sync sends a list-rooms command and waits for its reply, proving the
// hub has processed every command queued before it.
func syncClient(t *testing.T, c *Client) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandListRooms}
	mustEvent(t, c.Events, EventRoomList)
}
