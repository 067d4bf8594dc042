package live

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/saherflow/flowportal/internal/landing"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// message is the outgoing WebSocket message format.
type message struct {
	Type    string        `json:"type"` // "state" or "error"
	State   *landing.View `json:"state,omitempty"`
	Message string        `json:"message,omitempty"`
}

// Handler serves the landing page and its live sessions.
type Handler struct {
	page     *landing.Page
	opts     Options
	registry *Registry
}

// NewHandler validates opts by building one throwaway state.
func NewHandler(page *landing.Page, opts Options) (*Handler, error) {
	if _, err := NewState(opts); err != nil {
		return nil, err
	}
	return &Handler{page: page, opts: opts, registry: NewRegistry()}, nil
}

// Registry returns the live mount registry.
func (h *Handler) Registry() *Registry { return h.registry }

// RegisterRoutes mounts the page and its WebSocket onto r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Get(landing.WebSocketPath, h.handleWebSocket)
}

// Close unmounts every live session.
func (h *Handler) Close() {
	h.registry.CloseAll()
}

// ServeIndex renders the page as it looks at mount time.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	state, err := NewState(h.opts)
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.page.Render(&buf, state.View()); err != nil {
		log.Printf("live: rendering page: %v", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sink := &connSink{conn: conn}
	m, err := NewMount(h.opts, sink)
	if err != nil {
		log.Printf("live: creating mount: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !h.registry.Add(m, cancel) {
		log.Printf("live: mount %s refused, shutting down", m.ID)
		return
	}
	defer h.registry.Remove(m.ID)

	go h.readLoop(ctx, cancel, conn, sink, m)

	if err := m.Run(ctx); err != nil {
		log.Printf("live: mount %s: %v", m.ID, err)
	}
}

// readLoop decodes page messages and queues them on the mount. A read
// failure means the page went away, which unmounts it.
func (h *Handler) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sink *connSink, m *Mount) {
	defer cancel()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			if err := sink.Error("invalid message format"); err != nil {
				return
			}
			continue
		}

		if err := m.Send(ctx, cmd); err != nil {
			return
		}
	}
}

// connSink writes mount output to a WebSocket. Writes are serialized so the
// read loop can report decode errors alongside the mount's own output.
type connSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *connSink) State(v landing.View) error {
	return s.write(message{Type: "state", State: &v})
}

func (s *connSink) Error(msg string) error {
	return s.write(message{Type: "error", Message: msg})
}

func (s *connSink) write(msg message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}
