package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is the payload broadcast to live subscribers after a mutation
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
	At   time.Time   `json:"at"`
}

// Client is one connected SSE subscriber
type Client struct {
	ID   string
	Send chan []byte
}

// Hub fans mutation events out to all connected clients
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	mu         sync.RWMutex
}

// NewHub creates a hub. Call Run in a goroutine before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 256),
	}
}

// Run processes register, unregister and broadcast requests until the
// process exits
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- data:
				default:
					// Slow client, drop the event rather than block the hub
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register attaches a new client and returns it
func (h *Hub) Register() *Client {
	client := &Client{
		ID:   uuid.New().String(),
		Send: make(chan []byte, 64),
	}
	h.register <- client
	return client
}

// Unregister detaches a client and closes its send channel
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish broadcasts a mutation event to all connected clients. Implements
// the event publisher the services expect.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{Type: eventType, Data: data, At: time.Now()}
	select {
	case h.broadcast <- event:
	default:
		// Broadcast buffer full, drop rather than block the mutation path
	}
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
