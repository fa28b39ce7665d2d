package ws

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type directMessage struct {
	email   string
	payload []byte
}

// Hub owns the set of live chat connections. All mutation happens on the Run
// goroutine; the mutex only guards reads from other goroutines.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	direct     chan directMessage
	mutex      sync.RWMutex
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		direct:     make(chan directMessage, 1024),
		log:        log,
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				c.close()
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug().Str("email", client.email).Int("total_clients", total).Msg("ws connected")

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case msg := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, 1)
			for c := range h.clients {
				if c.email != "" && c.email == msg.email {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, c := range targets {
				if !c.enqueue(msg.payload) {
					h.remove(c)
				}
			}
			h.log.Debug().Str("email", msg.email).Int("clients", len(targets)).Msg("ws direct message")
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
	}
	total := len(h.clients)
	h.mutex.Unlock()

	client.close()
	if ok {
		h.log.Debug().Str("email", client.email).Int("total_clients", total).Msg("ws disconnected")
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendTo queues payload for every connection of the account. It never blocks.
func (h *Hub) SendTo(email string, payload []byte) {
	if h == nil || email == "" {
		return
	}
	select {
	case h.direct <- directMessage{email: email, payload: payload}:
	default:
		h.log.Warn().Str("email", email).Msg("ws direct message dropped, buffer full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
