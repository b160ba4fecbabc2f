package core

// Client is a chat participant as seen by the core layer.
type Client struct {
	ID   string
	Name string

	// Room is the name of the client's current room. Owned by the hub
	// goroutine once the client is registered; the transport must not
	// read or write it.
	Room string

	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels. eventBuffer
// bounds how many undelivered events a slow reader may accumulate.
func NewClient(id, name string, eventBuffer int) *Client {
	if name == "" {
		name = id
	}
	if eventBuffer <= 0 {
		eventBuffer = 16
	}
	return &Client{
		ID:       id,
		Name:     name,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, eventBuffer),
	}
}
