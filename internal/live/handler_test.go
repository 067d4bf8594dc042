package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/saherflow/flowportal/internal/config"
	"github.com/saherflow/flowportal/internal/landing"
)

func setupHandler(t *testing.T, clk *countingClock) (*Handler, *httptest.Server) {
	t.Helper()

	cfg := config.DefaultConfig()
	page, err := landing.NewPage(cfg.Content, cfg.Links)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	h, err := NewHandler(page, testOptions(clk))
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + landing.WebSocketPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(waitTimeout))
	var msg message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading message: %v", err)
	}
	return msg
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServeIndex(t *testing.T) {
	_, srv := setupHandler(t, newCountingClock())

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestWebSocketSession(t *testing.T) {
	clk := newCountingClock()
	h, srv := setupHandler(t, clk)
	conn := dial(t, srv)

	msg := readMessage(t, conn)
	if msg.Type != "state" || msg.State == nil || msg.State.Current != 0 {
		t.Fatalf("expected initial state at slide 0, got %+v", msg)
	}
	if h.Registry().Len() != 1 || h.Registry().Timers() != 1 {
		t.Fatalf("expected one mount with one timer, got %d/%d", h.Registry().Len(), h.Registry().Timers())
	}

	if err := conn.WriteJSON(map[string]any{"type": "select", "index": 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg = readMessage(t, conn); msg.State == nil || msg.State.Current != 2 {
		t.Fatalf("expected slide 2 after select, got %+v", msg)
	}

	if err := conn.WriteJSON(map[string]any{"type": "toggle"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg = readMessage(t, conn); msg.State == nil || msg.State.Classes != "dark" {
		t.Fatalf("expected dark root after toggle, got %+v", msg)
	}

	clk.Step(5 * time.Second)
	if msg = readMessage(t, conn); msg.State == nil || msg.State.Current != 0 {
		t.Fatalf("expected wrap to slide 0 on tick, got %+v", msg)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg = readMessage(t, conn); msg.Type != "error" || msg.Message != "invalid message format" {
		t.Fatalf("expected format error, got %+v", msg)
	}

	if err := conn.WriteJSON(map[string]any{"type": "select", "index": 9}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg = readMessage(t, conn); msg.Type != "error" {
		t.Fatalf("expected range error, got %+v", msg)
	}
}

func TestWebSocketCloseUnmounts(t *testing.T) {
	clk := newCountingClock()
	h, srv := setupHandler(t, clk)

	conn := dial(t, srv)
	readMessage(t, conn)

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	waitFor(t, "unmount", func() bool { return h.Registry().Len() == 0 })
	if got := clk.active.Load(); got != 0 {
		t.Errorf("expected no live timers after close, got %d", got)
	}

	// Remounting gets a fresh session with exactly one timer.
	conn = dial(t, srv)
	if msg := readMessage(t, conn); msg.State == nil || msg.State.Current != 0 || msg.State.Classes != "" {
		t.Fatalf("remount should start from defaults, got %+v", msg)
	}
	if got := clk.active.Load(); got != 1 {
		t.Errorf("expected 1 live timer after remount, got %d", got)
	}
}

func TestHandlerCloseUnmountsAll(t *testing.T) {
	clk := newCountingClock()
	h, srv := setupHandler(t, clk)

	for i := 0; i < 3; i++ {
		readMessage(t, dial(t, srv))
	}
	if got := clk.active.Load(); got != 3 {
		t.Fatalf("expected 3 live timers, got %d", got)
	}

	h.Close()
	waitFor(t, "all unmounted", func() bool { return h.Registry().Len() == 0 })
	if got := clk.active.Load(); got != 0 {
		t.Errorf("expected no live timers after Close, got %d", got)
	}
}

func TestWebSocketRefusedAfterClose(t *testing.T) {
	clk := newCountingClock()
	h, srv := setupHandler(t, clk)
	h.Close()

	conn := dial(t, srv)
	conn.SetReadDeadline(time.Now().Add(waitTimeout))
	var msg message
	if err := conn.ReadJSON(&msg); err == nil {
		t.Fatalf("expected connection to close after shutdown, got %+v", msg)
	}
	if h.Registry().Len() != 0 {
		t.Errorf("expected no mounts after Close, got %d", h.Registry().Len())
	}
	if got := clk.created.Load(); got != 0 {
		t.Errorf("expected no rotation timers after Close, got %d", got)
	}
}
