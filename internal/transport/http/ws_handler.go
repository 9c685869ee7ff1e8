package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// WSHandler drives one quiz session per websocket connection. The handler
// owns the one-second countdown: a per-session ticker goroutine feeds
// Tick into the session and is cancelled as soon as the session leaves
// IN_PROGRESS or the socket closes.
type WSHandler struct {
	service   *app.QuizService
	tokens    *auth.TokenManager
	upgrader  websocket.Upgrader
	tickEvery time.Duration
}

func NewWSHandler(service *app.QuizService, tokens *auth.TokenManager) *WSHandler {
	return &WSHandler{
		service: service,
		tokens:  tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tickEvery: time.Second,
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Categories []string `json:"categories"`
}

type selectPayload struct {
	Index int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ServeWS upgrades the request and runs the quiz message loop.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	// Mobile websocket clients cannot always set headers; accept the token
	// as a query parameter too.
	if raw := r.URL.Query().Get("token"); raw != "" && h.tokens != nil {
		if user, err := h.tokens.Parse(raw); err == nil {
			ctx = auth.WithUser(ctx, user)
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	var (
		sessionID  string
		tickerStop chan struct{}
		tickerDone chan struct{}
	)
	stopTicker := func() {
		if tickerStop != nil {
			close(tickerStop)
			<-tickerDone
			tickerStop, tickerDone = nil, nil
		}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid start payload", false)
				continue
			}
			if sessionID != "" {
				send <- errorMessage("session already started", false)
				continue
			}
			snap, err := h.service.Start(ctx, payload.Categories)
			if err != nil {
				send <- errorMessage(err.Error(), false)
				continue
			}
			sessionID = snap.SessionID
			send <- outboundMessage[any]{Type: "started", Payload: snap}
			tickerStop = make(chan struct{})
			tickerDone = make(chan struct{})
			go h.runTicker(ctx, sessionID, send, tickerStop, tickerDone)

		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid select payload", false)
				continue
			}
			snap, err := h.service.SelectOption(ctx, sessionID, payload.Index)
			if err != nil {
				send <- errorMessage(err.Error(), false)
				continue
			}
			send <- outboundMessage[any]{Type: "selected", Payload: snap}

		case "advance", "skip":
			action := h.service.Advance
			if inbound.Type == "skip" {
				action = h.service.Skip
			}
			snap, err := action(ctx, sessionID)
			if err != nil {
				send <- errorMessage(err.Error(), errors.Is(err, domain.ErrSaveScore))
				continue
			}
			if snap.State == app.StateComplete {
				stopTicker()
				send <- outboundMessage[any]{Type: "completed", Payload: snap}
				continue
			}
			send <- outboundMessage[any]{Type: "question", Payload: snap}

		case "abandon":
			stopTicker()
			if sessionID != "" {
				h.service.Abandon(ctx, sessionID)
				sessionID = ""
			}
			send <- outboundMessage[any]{Type: "abandoned", Payload: struct{}{}}

		default:
			send <- errorMessage("unsupported message type", false)
		}
	}

	stopTicker()
	if sessionID != "" {
		// Dropping the socket mid-session abandons the attempt; a completed
		// session was already reaped and this is a no-op.
		h.service.Abandon(ctx, sessionID)
	}
	close(send)
	<-writerDone
}

// runTicker delivers wall-clock seconds to the session. Every tick reports
// the fresh snapshot; a tick that lands on zero advances the session itself,
// so clients learn about timeouts from the same event stream.
func (h *WSHandler) runTicker(ctx context.Context, sessionID string, send chan<- outboundMessage[any], stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(h.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			snap, err := h.service.Tick(ctx, sessionID)
			if errors.Is(err, domain.ErrSessionNotFound) {
				return
			}
			var msg outboundMessage[any]
			switch {
			case err != nil:
				msg = errorMessage(err.Error(), errors.Is(err, domain.ErrSaveScore))
			case snap.State == app.StateComplete:
				msg = outboundMessage[any]{Type: "completed", Payload: snap}
			default:
				msg = outboundMessage[any]{Type: "tick", Payload: snap}
			}
			select {
			case send <- msg:
			case <-stop:
				return
			}
			if snap.State == app.StateComplete && err == nil {
				return
			}
		}
	}
}

func errorMessage(message string, retryable bool) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message, Retryable: retryable}}
}
