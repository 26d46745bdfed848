// Package authapitest provides an in-process stub of the authentication
// backend for tests and demos. It speaks the same wire format as package
// authapi: JSON bodies, per-field error maps and general failure messages.
//
// The default behavior is a tiny working backend with an in-memory account
// store. Failure modes are scripted per endpoint:
//
//	srv := authapitest.New()
//	defer srv.Close()
//
//	srv.Seed("user@example.com", "ValidPass1")
//	srv.RespondWith(authapitest.EndpointLogin, http.StatusInternalServerError, "boom")
package authapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Endpoint identifies a stubbed route for response scripting.
type Endpoint string

const (
	EndpointLogin    Endpoint = "login"
	EndpointRegister Endpoint = "register"
)

// Default response messages, exported so tests can assert against them.
const (
	MsgSignedIn           = "Signed in successfully."
	MsgInvalidCredentials = "Invalid email or password."
	MsgAccountCreated     = "Account created. Welcome!"
	MsgEmailTaken         = "This email is already registered"
)

type override struct {
	status int
	body   []byte
}

// Server is an httptest-backed stub authentication backend.
type Server struct {
	httpServer *httptest.Server

	mu        sync.Mutex
	accounts  map[string][]byte
	overrides map[Endpoint]override
	delay     time.Duration
}

// New starts the stub server. Callers must Close it when done.
func New() *Server {
	s := &Server{
		accounts:  make(map[string][]byte),
		overrides: make(map[Endpoint]override),
	}

	r := chi.NewRouter()
	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleRegister)

	s.httpServer = httptest.NewServer(r)
	return s
}

// URL returns the server's base URL for authapi.Config.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.httpServer.Close()
}

// Seed registers an account directly in the store, bypassing the endpoint.
func (s *Server) Seed(email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic("authapitest: seed password hashing failed: " + err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[normalizeEmail(email)] = hash
}

// RespondWith scripts a fixed response for an endpoint, replacing its
// default behavior until Reset is called. A string body is sent verbatim,
// which allows non-JSON responses; any other value is JSON-encoded.
func (s *Server) RespondWith(endpoint Endpoint, status int, body any) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			panic("authapitest: cannot encode scripted body: " + err.Error())
		}
		raw = encoded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[endpoint] = override{status: status, body: raw}
}

// Delay makes every handler sleep before responding, for timeout tests.
func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Reset clears scripted responses and the delay. Seeded accounts survive.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[Endpoint]override)
	s.delay = 0
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, EndpointLogin) {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Malformed request body"})
		return
	}

	s.mu.Lock()
	hash, found := s.accounts[normalizeEmail(req.Email)]
	s.mu.Unlock()

	if !found || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": MsgInvalidCredentials})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": MsgSignedIn,
		"token":   uuid.NewString(),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, EndpointRegister) {
		return
	}

	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Malformed request body"})
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = "This field is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "This field is required"
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors})
		return
	}

	email := normalizeEmail(req.Email)

	s.mu.Lock()
	_, taken := s.accounts[email]
	s.mu.Unlock()

	if taken {
		writeJSON(w, http.StatusConflict, map[string]any{
			"errors": map[string]string{"email": MsgEmailTaken},
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Hashing failed"})
		return
	}

	s.mu.Lock()
	s.accounts[email] = hash
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": MsgAccountCreated,
		"token":   uuid.NewString(),
	})
}

// intercept applies the scripted delay and override, reporting whether the
// default handler should be skipped.
func (s *Server) intercept(w http.ResponseWriter, endpoint Endpoint) bool {
	s.mu.Lock()
	delay := s.delay
	ov, scripted := s.overrides[endpoint]
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if !scripted {
		return false
	}

	if json.Valid(ov.body) {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain")
	}
	w.WriteHeader(ov.status)
	_, _ = w.Write(ov.body)
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
