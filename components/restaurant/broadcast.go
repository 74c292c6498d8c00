package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

const subscriberBuffer = 8

// BroadcastHook fans notices out to live dashboard sessions over WebSocket
// or Server-Sent Events.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]*subscriber
	next int
	seq  uint64
}

type subscriber struct {
	ch     chan Notice
	topics []string
}

// wants reports whether the subscriber follows the notice's record type,
// the part of Subject before the slash. No topics means everything.
func (s *subscriber) wants(n Notice) bool {
	if len(s.topics) == 0 {
		return true
	}
	topic, _, _ := strings.Cut(n.Subject, "/")
	return slices.Contains(s.topics, topic)
}

func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{subs: map[int]*subscriber{}}
}

var _ NoticeHook = (*BroadcastHook)(nil)

// Notice delivers to every interested subscriber. A full subscriber buffer
// drops the notice for that subscriber only.
func (h *BroadcastHook) Notice(_ context.Context, notice Notice) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	for _, sub := range h.subs {
		if !sub.wants(notice) {
			continue
		}
		select {
		case sub.ch <- notice:
		default:
		}
	}
	return nil
}

// Subscribe registers a listener for the given topics ("order",
// "promotion", "staff", ...). The returned func unsubscribes and closes
// the channel; calling it twice is safe.
func (h *BroadcastHook) Subscribe(topics ...string) (<-chan Notice, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	sub := &subscriber{ch: make(chan Notice, subscriberBuffer), topics: topics}
	h.subs[id] = sub
	return sub.ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub.ch)
		}
	}
}

func (h *BroadcastHook) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Published counts notices seen since start.
func (h *BroadcastHook) Published() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.seq
}

// requestTopics reads ?topics=order,promotion.
func requestTopics(r *http.Request) []string {
	var topics []string
	for part := range strings.SplitSeq(r.URL.Query().Get("topics"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			topics = append(topics, part)
		}
	}
	return topics
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket streams notices as JSON text frames.
func (h *BroadcastHook) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	notices, cancel := h.Subscribe(requestTopics(r)...)
	defer cancel()

	// The read loop notices client closes; notices are write-only.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case notice, ok := <-notices:
			if !ok {
				return
			}
			if err := conn.WriteJSON(notice); err != nil {
				return
			}
		}
	}
}

// ServeSSE streams notices as Server-Sent Events named after the notice kind.
func (h *BroadcastHook) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	notices, cancel := h.Subscribe(requestTopics(r)...)
	defer cancel()
	flusher.Flush()

	id := 0
	for {
		select {
		case <-r.Context().Done():
			return
		case notice, ok := <-notices:
			if !ok {
				return
			}
			data, err := json.Marshal(notice)
			if err != nil {
				continue
			}
			id++
			if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, eventName(notice), data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func eventName(n Notice) string {
	if n.Kind == "" {
		return string(NoticeInfo)
	}
	return string(n.Kind)
}
