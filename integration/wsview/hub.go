// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wsview

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gogpu/spheretext"
)

// writeWait bounds a single write to a client.
const writeWait = 5 * time.Second

// ErrHubClosed is returned when broadcasting on a closed hub.
var ErrHubClosed = errors.New("wsview: hub closed")

// Option configures a Hub.
type Option func(*Hub)

// WithTextHandler sets the function called when a client sends new text.
func WithTextHandler(fn func(text string)) Option {
	return func(h *Hub) {
		h.onText = fn
	}
}

// WithResizeHandler sets the function called when a client reports its
// viewport size.
func WithResizeHandler(fn func(w, h int)) Option {
	return func(h *Hub) {
		h.onResize = fn
	}
}

// WithCheckOrigin sets the origin check of the websocket upgrade. By
// default only same-origin requests are accepted.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = fn
	}
}

// Hub accepts websocket clients and broadcasts messages to all of them.
// It is safe for concurrent use.
type Hub struct {
	upgrader websocket.Upgrader
	onText   func(string)
	onResize func(w, h int)

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	last    []byte
	closed  bool
}

// NewHub returns a hub with no clients.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the request to a websocket and serves the client until
// it disconnects. The last broadcast message is sent on connect.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := spheretext.Logger()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("wsview: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.clients[conn] = connMu
	last := h.last
	h.mu.Unlock()
	defer h.drop(conn)

	log.Info("wsview: client connected", "remote", r.RemoteAddr)
	if last != nil {
		if err := write(conn, connMu, last); err != nil {
			log.Warn("wsview: initial frame failed", "remote", r.RemoteAddr, "err", err)
			return
		}
	}

	for {
		var msg ControlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("wsview: read ended", "remote", r.RemoteAddr, "err", err)
			}
			return
		}
		h.handle(msg)
	}
}

func (h *Hub) handle(msg ControlMessage) {
	if msg.Text != nil && h.onText != nil {
		h.onText(*msg.Text)
	}
	if msg.Width > 0 && msg.Height > 0 && h.onResize != nil {
		h.onResize(msg.Width, msg.Height)
	}
}

// Broadcast sends msg as JSON to every client. Clients whose write fails
// are disconnected.
func (h *Hub) Broadcast(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.last = data
	clients := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for c, m := range h.clients {
		clients[c] = m
	}
	h.mu.Unlock()

	for c, m := range clients {
		if err := write(c, m, data); err != nil {
			spheretext.Logger().Warn("wsview: dropping client", "remote", c.RemoteAddr().String(), "err", err)
			c.Close()
			h.drop(c)
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c, m := range h.clients {
		m.Lock()
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait))
		m.Unlock()
		c.Close()
	}
	clear(h.clients)
}

func (h *Hub) drop(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func write(c *websocket.Conn, mu *sync.Mutex, data []byte) error {
	mu.Lock()
	defer mu.Unlock()
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.WriteMessage(websocket.TextMessage, data)
}
