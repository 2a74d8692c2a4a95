package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Event types pushed over the dashboard event stream.
const (
	EventAlert    = "alert"
	EventLocation = "location"
)

// Event is a single server-sent message for one caregiver's dashboard.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Encode renders the event payload as JSON.
func (e Event) Encode() []byte {
	b, err := json.Marshal(e)
	if err != nil {
		return []byte(`{"type":"error"}`)
	}
	return b
}

// Hub fans NATS-delivered events out to connected dashboard streams. Each
// subscriber is one open SSE connection, keyed by the caregiver's user id.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[chan Event]struct{})}
}

// Subscribe registers a stream for userID and returns its event channel and
// an unsubscribe func. The channel is buffered; a subscriber that stops
// draining loses events rather than blocking the broadcaster.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Event]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], ch)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast delivers ev to every stream registered for userID. Full
// subscriber buffers are skipped.
func (h *Hub) Broadcast(userID uuid.UUID, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers reports how many streams are open for userID.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
