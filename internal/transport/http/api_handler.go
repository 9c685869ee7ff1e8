package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// APIHandler serves the REST surface: accounts, the category catalogue,
// the leaderboard, and the profile attempt history.
type APIHandler struct {
	quiz     *app.QuizService
	accounts *auth.Service
}

func NewAPIHandler(quiz *app.QuizService, accounts *auth.Service) *APIHandler {
	return &APIHandler{quiz: quiz, accounts: accounts}
}

// Register wires the REST routes onto mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/register", h.handleRegister)
	mux.HandleFunc("/api/login", h.handleLogin)
	mux.HandleFunc("/api/categories", h.handleCategories)
	mux.HandleFunc("/api/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("/api/me/attempts", h.handleMyAttempts)
}

type credentialsPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *APIHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	result, err := h.accounts.Register(r.Context(), payload.Email, payload.Password, payload.FirstName, payload.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *APIHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	result, err := h.accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.quiz.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *APIHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.quiz.Leaderboard(r.Context())
	if err != nil {
		log.Printf("leaderboard read failed: %v", err)
		http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

type attemptsResponse struct {
	Attempts   []domain.AttemptRecord `json:"attempts"`
	TotalScore int                    `json:"totalScore"`
}

func (h *APIHandler) handleMyAttempts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	records, total, err := h.quiz.UserAttempts(r.Context(), user.ID)
	if err != nil {
		log.Printf("attempts read failed: %v", err)
		http.Error(w, "failed to load attempts", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.AttemptRecord{}
	}
	writeJSON(w, http.StatusOK, attemptsResponse{Attempts: records, TotalScore: total})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
