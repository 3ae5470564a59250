package tui

import (
	"sync"

	"github.com/mlai-aus/arcade/internal/content"
)

// ContentHub fans reloaded content out to every connected session.
type ContentHub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan content.Library
	last content.Library
}

// NewContentHub creates a hub whose initial library is lib.
func NewContentHub(lib content.Library) *ContentHub {
	return &ContentHub{subs: make(map[int]chan content.Library), last: lib}
}

// Current returns the most recently published library.
func (h *ContentHub) Current() content.Library {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Subscribe registers a receiver. The channel holds at most one pending
// library; a newer publish replaces an unread one.
func (h *ContentHub) Subscribe() (int, <-chan content.Library) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	ch := make(chan content.Library, 1)
	h.subs[h.next] = ch
	return h.next, ch
}

// Unsubscribe removes and closes the subscriber's channel.
func (h *ContentHub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish delivers lib to every subscriber without blocking.
func (h *ContentHub) Publish(lib content.Library) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = lib
	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- lib
	}
}

// Len returns the number of subscribers.
func (h *ContentHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close unsubscribes everyone.
func (h *ContentHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
