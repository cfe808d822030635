package livegateway

import "sync"

// Hub fans match change notifications out to spectator streams, one buffer
// per match.
type Hub struct {
	mu      sync.Mutex
	bufMax  int
	buffers map[string]*EventBuffer
}

func NewHub() *Hub {
	return &Hub{bufMax: 200, buffers: map[string]*EventBuffer{}}
}

func (h *Hub) Buffer(matchID string) *EventBuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf, ok := h.buffers[matchID]
	if !ok {
		buf = NewEventBuffer(matchID, h.bufMax)
		h.buffers[matchID] = buf
	}
	return buf
}

// Publish emits a change event for one mutated table of the match.
func (h *Hub) Publish(matchID, table, op, highlight string) {
	h.Buffer(matchID).Append("change", ChangePayload{Table: table, Op: op, Highlight: highlight})
}

// Drop closes and forgets the match's buffer, e.g. after a soft delete.
func (h *Hub) Drop(matchID string) {
	h.mu.Lock()
	buf, ok := h.buffers[matchID]
	delete(h.buffers, matchID)
	h.mu.Unlock()
	if ok {
		buf.Close()
	}
}
