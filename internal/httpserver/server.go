// internal/httpserver/server.go
//
// HTTP server wiring for the Cross Clues backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request log).
//   - Public endpoints: "/", "/health", "/wordlists".
//   - Room endpoints: create/list rooms, hand out seat tokens, views, actions, results.
//   - WebSocket endpoint pushing a fresh view to each connected seat after every action.
//   - Archiving finished games through the results store.
//
// Notes:
//   - The game engine is never touched directly; every call goes through room.Room,
//     which serializes actions per room.
//   - Seat tokens are HS256 JWTs binding a client to (room, player). They are not
//     user accounts: anyone who can reach an open room may take any seat.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossclues/internal/config"
	"github.com/robalobadob/crossclues/internal/results"
	"github.com/robalobadob/crossclues/internal/store"
	"github.com/robalobadob/crossclues/internal/words"
)

// Archive persists finished games.
type Archive interface {
	Record(ctx context.Context, g results.Game) error
	Get(ctx context.Context, id string) (*results.Game, error)
}

// Server bundles router, live rooms, and the results archive.
type Server struct {
	r       *chi.Mux
	store   store.Store
	archive Archive
	seats   seatSigner
	origin  string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, archive Archive, cfg config.Config) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		archive: archive,
		seats:   seatSigner{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL},
		origin:  cfg.ClientOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)   // one debug line per request
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(jsonContentType) // default JSON responses
	s.r.Use(s.cors)          // credentials-friendly CORS

	// WebSocket stays outside the timeout group; the connection outlives it.
	s.r.Get("/rooms/{roomID}/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"crossclues","endpoints":["/health","/wordlists","/rooms"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/wordlists", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, words.Default().Stats())
		})

		s.mountRooms(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
