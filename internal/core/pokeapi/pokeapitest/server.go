// Package pokeapitest provides an in-process PokéAPI stand-in for tests.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// PokemonPath is the route prefix PokéAPI serves pokemon resources under.
const PokemonPath = "/api/v2/pokemon"

// Response is a canned reply for one pokemon name.
type Response struct {
	Status      int
	Body        string
	ContentType string
}

// Server routes /api/v2/pokemon/{name} to canned responses. Unknown names get
// PokéAPI's plain-text 404.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []string
}

// NewServer starts a server. Callers must Close it.
func NewServer() *Server {
	s := &Server{responses: make(map[string]Response)}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get(PokemonPath+"/{name}", s.handlePokemon)

	s.Server = httptest.NewServer(router)
	return s
}

// BaseURL is the endpoint root to hand to pokeapi.Client.
func (s *Server) BaseURL() string {
	return s.URL + PokemonPath
}

// Handle registers a canned response for name (matched verbatim).
func (s *Server) Handle(name string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[name] = resp
}

// HandlePokemon registers a 200 JSON response built from p.
func (s *Server) HandlePokemon(p Pokemon) {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	s.Handle(p.Name, Response{Status: http.StatusOK, Body: string(data), ContentType: "application/json"})
}

// Requests returns the request paths seen so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	s.requests = append(s.requests, r.URL.EscapedPath())
	resp, ok := s.responses[name]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp.Body))
}
