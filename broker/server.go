package broker

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"wargame/game"
)

// TurnMove is the wire form of a played move: the coordinates plus the
// turn number it was played on, so a polling client can tell a fresh
// move from one it has already consumed.
type TurnMove struct {
	Move game.Move `json:"move"`
	Turn int       `json:"turn"`
}

// envelope wraps every broker response.
type envelope struct {
	Success bool      `json:"success"`
	Data    *TurnMove `json:"data"`
}

// Server is the move relay two remote hosts play through. It keeps only
// the most recently posted move; the history lives in each host's own
// trace. State is guarded by a mutex since both hosts poll and post
// concurrently.
type Server struct {
	mu   sync.RWMutex
	last *TurnMove
}

func NewServer() *Server {
	return &Server{}
}

// Handler returns the route set, usable directly or under httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/move", s.handleMove)
	return mux
}

// Start serves the relay on addr. It blocks.
func (s *Server) Start(addr string) error {
	log.Info().Msgf("broker listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetMove(w, r)
	case http.MethodPost:
		s.handlePostMove(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetMove(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, envelope{Success: true, Data: s.last})
}

func (s *Server) handlePostMove(w http.ResponseWriter, r *http.Request) {
	var tm TurnMove
	if err := json.NewDecoder(r.Body).Decode(&tm); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, envelope{Success: false})
		return
	}
	s.mu.Lock()
	s.last = &tm
	s.mu.Unlock()
	log.Debug().Msgf("broker stored move %s for turn %d", tm.Move, tm.Turn)
	writeJSON(w, envelope{Success: true, Data: &tm})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
