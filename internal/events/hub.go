package events

import (
	"sync"

	"github.com/itsd-lab/vendorgate/internal/domain/submission"
)

// StatusEvent is published after every successful workflow transition and
// relayed to dashboard WebSocket clients.
type StatusEvent struct {
	ProjectID uint                  `json:"project_id"`
	FormKey   string                `json:"form_key"`
	Status    submission.FormStatus `json:"status"`
	Actor     string                `json:"actor"`
}

// Hub fans StatusEvents out to subscribers. Slow subscribers drop events
// rather than block the workflow.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan StatusEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan StatusEvent]struct{})}
}

func (h *Hub) Subscribe() chan StatusEvent {
	ch := make(chan StatusEvent, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan StatusEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(ev StatusEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
