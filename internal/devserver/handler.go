// Package devserver serves a live HTML preview of the most recent parse
// result, pushing a refreshed summary over a WebSocket connection whenever
// a new one arrives.
package devserver

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lunziqwq/cdxml-tools/parser"
)

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests
// with WebSocket.
var wsUpgrader = websocket.Upgrader{}

// Handler is a net/http.Handler that renders the current parser.Output as
// an HTML debug page, and, on a WebSocket connection, re-renders and
// pushes it on every Update.
type Handler struct {
	// Logger configures logging for internal events.
	Logger *slog.Logger

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance used to log internal events.
	logger *slog.Logger

	mu      sync.RWMutex
	current *parser.Output

	subMu       sync.Mutex
	subscribers map[chan *parser.Output]struct{}
}

// Update replaces the snapshot ServeHTTP renders and wakes every connected
// WebSocket client so it re-renders, too. Called by a watcher each time it
// re-parses a changed file.
func (h *Handler) Update(out *parser.Output) {
	h.mu.Lock()
	h.current = out
	h.mu.Unlock()

	h.subMu.Lock()
	defer h.subMu.Unlock()
	for c := range h.subscribers {
		select {
		case c <- out:
		default:
			// a slow subscriber's queued update is replaced rather than
			// blocking the whole broadcast, so the one it still has queued
			// is the most recent.
			select {
			case <-c:
			default:
			}
			select {
			case c <- out:
			default:
			}
		}
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}
		h.subscribers = make(map[chan *parser.Output]struct{})
	})

	if websocket.IsWebSocketUpgrade(r) {
		if err := h.serveWebSocket(w, r); err != nil {
			h.logger.Error("serve websocket", "error", err)
		}
		return
	}

	h.mu.RLock()
	out := h.current
	h.mu.RUnlock()

	if err := renderPage(w, out); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		h.logger.Error("render debug page", "error", err)
	}
}

// serveWebSocket upgrades the connection and pushes a re-rendered summary
// every time Update fires, until the connection closes or the reader goroutine
// signals the rendering loop to stop.
func (h *Handler) serveWebSocket(w http.ResponseWriter, r *http.Request) error {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	updates := make(chan *parser.Output, 1)
	h.subMu.Lock()
	h.subscribers[updates] = struct{}{}
	h.subMu.Unlock()
	defer func() {
		h.subMu.Lock()
		delete(h.subscribers, updates)
		h.subMu.Unlock()
	}()

	done := make(chan error, 1)
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					err = nil
				} else {
					err = fmt.Errorf("read websocket message: %w", err)
				}
				done <- err
				return
			}
		}
	}()

	h.mu.RLock()
	initial := h.current
	h.mu.RUnlock()
	if initial != nil {
		if err := h.pushSummary(ws, initial); err != nil {
			return err
		}
	}

	for {
		select {
		case out := <-updates:
			if err := h.pushSummary(ws, out); err != nil {
				return err
			}
		case err := <-done:
			return err
		}
	}
}

func (h *Handler) pushSummary(ws *websocket.Conn, out *parser.Output) error {
	nw, err := ws.NextWriter(websocket.TextMessage)
	if err != nil {
		return fmt.Errorf("get websocket writer: %w", err)
	}
	if err := renderPage(nw, out); err != nil {
		return err
	}
	return nw.Close()
}
