package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/infra/memory"
)

func TestWebSocketQuizFlow(t *testing.T) {
	service, _ := newTestService()
	wsHandler := NewWSHandler(service, auth.NewTokenManager("test-secret"))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	writeMsg(t, conn, "start", map[string]any{"categories": []string{"mobile computing"}})
	typ, payload := readNext(conn, t, "started")
	if typ != "started" {
		t.Fatalf("expected started, got %s", typ)
	}
	if total, _ := payload["total"].(float64); total != 4 {
		t.Fatalf("expected 4 questions, got %v", payload["total"])
	}

	// Q1 correct.
	writeMsg(t, conn, "select", map[string]any{"index": 0})
	readNext(conn, t, "selected")
	writeMsg(t, conn, "advance", nil)
	readNext(conn, t, "question")

	// Q2 and Q3 unanswered.
	writeMsg(t, conn, "advance", nil)
	readNext(conn, t, "question")
	writeMsg(t, conn, "skip", nil)
	readNext(conn, t, "question")

	// Q4 correct, final advance persists and completes.
	writeMsg(t, conn, "select", map[string]any{"index": 3})
	readNext(conn, t, "selected")
	writeMsg(t, conn, "advance", nil)
	typ, payload = readNext(conn, t, "completed")
	if typ != "completed" {
		t.Fatalf("expected completed, got %s", typ)
	}
	if score, _ := payload["score"].(float64); score != 2 {
		t.Fatalf("expected score 2, got %v", payload["score"])
	}
}

func TestWebSocketStartUnknownCategory(t *testing.T) {
	service, _ := newTestService()
	wsHandler := NewWSHandler(service, auth.NewTokenManager("test-secret"))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+server.URL[len("http"):]+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	writeMsg(t, conn, "start", map[string]any{"categories": []string{"no such topic"}})
	typ, _ := readNext(conn, t, "error")
	if typ != "error" {
		t.Fatalf("expected error, got %s", typ)
	}
}

func writeMsg(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": msgType, "payload": payload}); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readNext returns the next non-tick message; the countdown interleaves
// tick events with everything else.
func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	for {
		var msg struct {
			Type    string         `json:"type"`
			Payload map[string]any `json:"payload"`
		}
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read json: %v", err)
		}
		if msg.Type == "tick" {
			continue
		}
		if expect != "" && msg.Type != expect {
			t.Fatalf("expected type %s, got %s", expect, msg.Type)
		}
		return msg.Type, msg.Payload
	}
}

func newTestService() (*app.QuizService, *memory.ScoreStore) {
	store := memory.NewScoreStore()
	service := app.NewQuizService(
		memory.NewSessionStore(),
		memory.NewDefaultQuestionSource(),
		store,
		auth.ContextIdentity{},
		app.DefaultQuestionSeconds,
	)
	return service, store
}
