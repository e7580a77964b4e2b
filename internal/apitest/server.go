// Package apitest provides an in-process fake of the SleepCoach backend for
// tests. It implements every endpoint the client uses, keeps users and their
// onboarding progress in memory, and records the requests it receives.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Request is one recorded call.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          map[string]any
}

// Failure is a canned error response served instead of the real handler.
type Failure struct {
	Status int
	Body   string
}

type user struct {
	password passwordHash
	profile  map[string]any
	answers  map[string]any
}

// Server is a fake backend. The zero value is not usable; call NewServer.
type Server struct {
	*httptest.Server

	// Analytics is served verbatim by the analytics endpoint.
	Analytics any

	mu       sync.Mutex
	users    map[string]*user
	tokens   map[string]string
	requests []Request
	failures map[string][]Failure
	secret   []byte
}

// progress maps each submission path to the profile state it leads to.
var progress = map[string]struct {
	next    string
	percent int
}{
	"/api/onboarding/screen1":  {"screen2", 20},
	"/api/onboarding/screen2":  {"screen3", 40},
	"/api/onboarding/screen3":  {"screen4", 60},
	"/api/onboarding/screen4":  {"complete", 80},
	"/api/onboarding/complete": {"completed", 100},
}

func NewServer() *Server {
	s := &Server{
		users:    make(map[string]*user),
		tokens:   make(map[string]string),
		failures: make(map[string][]Failure),
		secret:   []byte("apitest-secret"),
		Analytics: map[string]any{
			"data": map[string]any{
				"summary": map[string]any{
					"totalUsersRegistered":          10,
					"totalUsersCompletedOnboarding": 4,
					"overallCompletionRate":         40,
				},
				"completedUsers":  []any{},
				"droppedOffUsers": []any{},
				"screenAnalytics": []any{},
				"funnel":          []any{},
			},
		},
	}

	r := chi.NewRouter()
	r.Use(s.record, s.inject)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "OK"})
	})
	r.Post("/api/auth/signup", s.signup)
	r.Post("/api/auth/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Post("/api/onboarding/{step}", s.submit)
		r.Get("/api/user/details", s.details)
		r.Get("/api/stats/analytics", func(w http.ResponseWriter, _ *http.Request) {
			s.mu.Lock()
			body := s.Analytics
			s.mu.Unlock()
			writeJSON(w, http.StatusOK, body)
		})
	})

	s.Server = httptest.NewServer(r)
	return s
}

// AddUser registers a user directly with the given profile fields merged
// over a fresh profile, and returns a valid token for it.
func (s *Server) AddUser(nickname, password string, profile map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.newUserLocked(nickname, password)
	for k, v := range profile {
		u.profile[k] = v
	}
	return s.issueTokenLocked(nickname)
}

// Fail queues failures for path; each request to path consumes one.
func (s *Server) Fail(path string, failures ...Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = append(s.failures[path], failures...)
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests for path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Profile returns the server-side profile of nickname.
func (s *Server) Profile(nickname string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[nickname]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(u.profile))
	for k, v := range u.profile {
		out[k] = v
	}
	return out
}

func (s *Server) newUserLocked(nickname, password string) *user {
	u := &user{
		password: hashPassword(password),
		answers:  make(map[string]any),
		profile: map[string]any{
			"userId":               uuid.NewString(),
			"nickname":             nickname,
			"currentScreen":        "screen1",
			"isOnboardingComplete": false,
			"progressPercentage":   0,
		},
	}
	s.users[nickname] = u
	return u
}

func (s *Server) issueTokenLocked(nickname string) string {
	u := s.users[nickname]
	claims := jwt.RegisteredClaims{
		Subject:   u.profile["userId"].(string),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		ID:        uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	s.tokens[token] = nickname
	return token
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &rec.Body)
			r.Body = io.NopCloser(bytes.NewReader(raw))
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		queue := s.failures[r.URL.Path]
		var f *Failure
		if len(queue) > 0 {
			f = &queue[0]
			s.failures[r.URL.Path] = queue[1:]
		}
		s.mu.Unlock()

		if f == nil {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.Status)
		_, _ = w.Write([]byte(f.Body))
	})
}

type ctxKey struct{}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		nickname, known := s.tokens[token]
		s.mu.Unlock()
		if !ok || !known {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Access token required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(contextWithUser(r, nickname)))
	})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Nickname == "" || in.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "nickname and password are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[in.Nickname]; exists {
		writeJSON(w, http.StatusConflict, map[string]any{"message": "nickname already taken"})
		return
	}
	u := s.newUserLocked(in.Nickname, in.Password)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"token":   s.issueTokenLocked(in.Nickname),
		"user":    u.profile,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[in.Nickname]
	if !ok || !u.password.matches(in.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": s.issueTokenLocked(in.Nickname),
		"user":  u.profile,
	})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	step, ok := progress[r.URL.Path]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "unknown step"})
		return
	}
	var answers map[string]any
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[userFromContext(r)]
	for k, v := range answers {
		u.answers[k] = v
	}
	u.profile["currentScreen"] = step.next
	u.profile["progressPercentage"] = step.percent
	if step.next == "completed" {
		u.profile["isOnboardingComplete"] = true
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "saved"})
}

func (s *Server) details(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[userFromContext(r)]
	writeJSON(w, http.StatusOK, map[string]any{"user": u.profile, "onboarding": u.answers})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
