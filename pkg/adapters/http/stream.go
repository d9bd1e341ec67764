package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/aegraph/pkg/domain"
)

// StreamManager fans rule events out to Server-Sent Events subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	closed      bool
}

// NewStreamManager creates an empty stream manager.
func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
	}
}

// Subscribe registers a new subscriber. The returned function unsubscribes
// and closes the channel.
func (sm *StreamManager) Subscribe() (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if sm.closed {
		close(ch)
		return ch, func() {}
	}
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Close ends every open stream and refuses new ones. Register it with
// http.Server.RegisterOnShutdown so that Shutdown does not wait on
// subscribers that never hang up.
func (sm *StreamManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.closed = true
	for ch := range sm.subscribers {
		delete(sm.subscribers, ch)
		close(ch)
	}
}

// Broadcast sends msg to every subscriber without blocking.
func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			slog.Warn("SSE: Client buffer full, dropping message")
		}
	}
}

// Hooks returns lifecycle hooks that broadcast every rule event as JSON.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	publish := func(_ context.Context, e *domain.RuleEvent) {
		bytes, err := json.Marshal(e)
		if err != nil {
			slog.Error("SSE: event encode failed", "error", err)
			return
		}
		sm.Broadcast(string(bytes))
	}
	return domain.LifecycleHooks{OnApply: publish, OnReject: publish}
}

// ServeHTTP handles GET /events.
func (sm *StreamManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := sm.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: rule\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
