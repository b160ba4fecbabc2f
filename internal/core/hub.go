package core

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Hub is the room registry: it owns every room and every client-to-room
// assignment. All mutation and all fan-out happen on the single Run
// goroutine, so a join can never interleave with a broadcast on the same
// room and a client is in exactly one room at every step boundary.
type Hub struct {
	defaultRoom string
	notices     bool
	log         zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	done       chan struct{}

	// Touched only from the Run goroutine.
	rooms   map[string]*Room
	clients map[*Client]struct{}
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub whose clients start out in defaultRoom. When
// notices is true, joins and leaves are announced to affected rooms.
func NewHub(defaultRoom string, notices bool, logger *zerolog.Logger) *Hub {
	if defaultRoom == "" {
		defaultRoom = "default"
	}
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		defaultRoom: defaultRoom,
		notices:     notices,
		log:         lg,
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		commands:    make(chan clientCommand),
		done:        make(chan struct{}),
		rooms:       make(map[string]*Room),
		clients:     make(map[*Client]struct{}),
	}
}

// RegisterClient publishes a client to the hub and places it in the
// default room. The hub starts consuming the client's Commands channel;
// the caller must close it after UnregisterClient. Returns false if the
// hub has already stopped: the client is not registered and its
// channels are left untouched.
func (h *Hub) RegisterClient(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// UnregisterClient removes the client from its room and closes its
// Events channel. Safe to call after the hub has stopped.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Run processes registrations and commands until ctx is cancelled, then
// notifies and detaches every remaining client.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case cc := <-h.commands:
			h.handleCommand(cc.client, cc.cmd)
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	if _, ok := h.clients[c]; ok {
		return
	}
	h.clients[c] = struct{}{}

	room := h.getOrCreateRoom(h.defaultRoom)
	room.AddClient(c)
	c.Room = room.Name

	if h.notices {
		room.Broadcast(&Event{Kind: EventUserJoined, Room: room.Name, User: c.Name}, c)
	}
	h.log.Debug().Str("client_id", c.ID).Str("user", c.Name).Str("room", room.Name).Msg("client registered")

	go h.pumpCommands(c)
}

// pumpCommands forwards one client's commands into the hub loop. It ends
// when the transport closes the Commands channel or the hub stops.
func (h *Hub) pumpCommands(c *Client) {
	for cmd := range c.Commands {
		select {
		case h.commands <- clientCommand{client: c, cmd: cmd}:
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleUnregister(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)

	if room, ok := h.rooms[c.Room]; ok {
		room.RemoveClient(c)
		if h.notices {
			room.Broadcast(&Event{Kind: EventUserLeft, Room: room.Name, User: c.Name}, nil)
		}
	}
	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Str("user", c.Name).Msg("client unregistered")
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	if _, ok := h.clients[c]; !ok {
		// Command raced with unregistration; the sender is gone.
		return
	}

	switch cmd.Kind {
	case CommandSendMessage:
		h.handleSendMessage(c, cmd)
	case CommandJoinRoom:
		h.handleJoinRoom(c, cmd.Room)
	case CommandListRooms:
		h.handleListRooms(c)
	}
}

func (h *Hub) handleSendMessage(c *Client, cmd *Command) {
	room := h.rooms[c.Room]

	msg := cmd.Message
	msg.Room = room.Name
	msg.From = c.Name
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	room.Broadcast(&Event{Kind: EventRoomMessage, Room: room.Name, Message: msg}, c)
}

// handleJoinRoom moves the client between rooms in one hub step: no
// broadcast can observe it as a member of both or neither.
func (h *Hub) handleJoinRoom(c *Client, target string) {
	if target == "" {
		h.deliver(c, &Event{Kind: EventError, Error: coreError(ErrCodeBadRequest, "room name required")})
		return
	}
	if target == c.Room {
		h.deliver(c, &Event{Kind: EventError, Error: coreError(ErrCodeAlreadyJoined, "already in room "+target)})
		return
	}

	old := h.rooms[c.Room]
	old.RemoveClient(c)
	if h.notices {
		old.Broadcast(&Event{Kind: EventUserLeft, Room: old.Name, User: c.Name}, nil)
	}

	room := h.getOrCreateRoom(target)
	room.AddClient(c)
	c.Room = room.Name
	if h.notices {
		room.Broadcast(&Event{Kind: EventUserJoined, Room: room.Name, User: c.Name}, c)
	}

	h.log.Debug().Str("user", c.Name).Str("from", old.Name).Str("to", room.Name).Msg("client moved rooms")
}

func (h *Hub) handleListRooms(c *Client) {
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	sort.Strings(names)

	h.deliver(c, &Event{Kind: EventRoomList, Rooms: names})
}

// getOrCreateRoom resolves a room by name, creating an empty one on
// first use. Rooms are never deleted; empty rooms keep their name.
func (h *Hub) getOrCreateRoom(name string) *Room {
	if room, ok := h.rooms[name]; ok {
		return room
	}
	room := NewRoom(name)
	h.rooms[name] = room
	h.log.Debug().Str("room", name).Msg("room created")
	return room
}

// deliver sends an event to a single client without blocking the loop.
func (h *Hub) deliver(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}

// shutdown detaches every remaining client, telling each one the server
// is going away. Must run on the hub goroutine, exactly once.
func (h *Hub) shutdown() {
	close(h.done)
	for c := range h.clients {
		h.deliver(c, &Event{Kind: EventShutdown})
		close(c.Events)
		delete(h.clients, c)
	}
	h.log.Debug().Msg("hub stopped")
}
