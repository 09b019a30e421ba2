package notify

import (
	"gig-marketplace-api/internal/entity"
	"log"
	"sync"
)

// Session is one live push connection. *websocket.Conn satisfies it.
type Session interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub owns the registry of live sessions keyed by user id. Callers publish
// to an identity and never touch connection state directly. Delivery is
// best-effort and at-most-once: an identity with no registered session
// simply misses the event.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[Session]struct{}),
	}
}

func (h *Hub) Register(userId string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[userId] == nil {
		h.sessions[userId] = make(map[Session]struct{})
	}
	h.sessions[userId][s] = struct{}{}
}

func (h *Hub) Unregister(userId string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.sessions[userId]
	if !ok {
		return
	}

	delete(set, s)
	if len(set) == 0 {
		delete(h.sessions, userId)
	}
}

// Publish pushes the event to every live session of the given user. A failed
// write drops that session from the registry; it never fails the caller.
func (h *Hub) Publish(userId string, event entity.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.sessions[userId]
	if !ok {
		return
	}

	for s := range set {
		if err := s.WriteJSON(event); err != nil {
			log.Println("notify: dropping dead session for user " + userId)
			delete(set, s)
			_ = s.Close()
		}
	}
	if len(set) == 0 {
		delete(h.sessions, userId)
	}
}
