// internal/httpserver/rooms.go
//
// HTTP routes for game rooms:
//   - POST /rooms                → create a room around a new game
//   - GET  /rooms                → list live rooms
//   - POST /rooms/{id}/seats     → get a seat token for one player
//   - GET  /rooms/{id}/view      → redacted view (seat token optional)
//   - POST /rooms/{id}/actions   → apply an action as the token's player
//   - GET  /rooms/{id}/results   → archived outcome of a finished game
//   - DELETE /rooms/{id}         → close a room (any seated player)

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossclues/internal/game"
	"github.com/robalobadob/crossclues/internal/results"
	"github.com/robalobadob/crossclues/internal/room"
)

const maxBody = 64 << 10

func (s *Server) mountRooms(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", s.handleCreateRoom)
		r.Get("/", s.handleListRooms)
		r.Route("/{roomID}", func(r chi.Router) {
			r.Delete("/", s.handleDeleteRoom)
			r.Post("/seats", s.handleSeat)
			r.Get("/view", s.handleView)
			r.Post("/actions", s.handleAction)
			r.Get("/results", s.handleResults)
		})
	})
}

// loadRoom resolves {roomID}, writing a 404 when it is unknown.
func (s *Server) loadRoom(w http.ResponseWriter, r *http.Request) (*room.Room, bool) {
	rm, err := s.store.Get(r.Context(), chi.URLParam(r, "roomID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "room_not_found")
		return nil, false
	}
	return rm, true
}

// -----------------------------------------------------------------------------
// POST /rooms

type createRoomReq struct {
	Config     *game.Config `json:"config"` // optional; default 4x4, all word lists
	Players    int          `json:"players"`
	Passphrase string       `json:"passphrase"` // optional; required for seats when set
}

type createRoomRes struct {
	RoomID  string          `json:"roomId"`
	Players []game.PlayerID `json:"players"`
	Locked  bool            `json:"locked"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomReq
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	cfg := game.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	g, err := game.New(cfg, req.Players)
	if err != nil {
		var ce *game.CreationError
		if errors.As(err, &ce) {
			writeError(w, http.StatusBadRequest, ce.Error())
			return
		}
		log.Error().Err(err).Msg("create game")
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	rm, err := room.New(g, room.WithPassphrase(req.Passphrase), room.WithGameOver(s.archiveGame))
	if err != nil {
		log.Error().Err(err).Msg("create room")
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	if err := s.store.Save(r.Context(), rm); err != nil {
		log.Error().Err(err).Msg("save room")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	log.Info().Str("room", rm.ID).Int("players", req.Players).
		Int("rows", cfg.Size.Row).Int("cols", cfg.Size.Col).Msg("room created")
	writeJSON(w, http.StatusCreated, createRoomRes{RoomID: rm.ID, Players: rm.Players(), Locked: rm.Locked()})
}

// -----------------------------------------------------------------------------
// GET /rooms

type roomRow struct {
	RoomID    string    `json:"roomId"`
	Players   int       `json:"players"`
	Locked    bool      `json:"locked"`
	Over      bool      `json:"over"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	out := make([]roomRow, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, roomRow{
			RoomID:    rm.ID,
			Players:   len(rm.Players()),
			Locked:    rm.Locked(),
			Over:      rm.Over(),
			CreatedAt: rm.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// POST /rooms/{id}/seats

type seatReq struct {
	Player     game.PlayerID `json:"player"`
	Passphrase string        `json:"passphrase"`
}

type seatRes struct {
	Token     string        `json:"token"`
	Player    game.PlayerID `json:"player"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

func (s *Server) handleSeat(w http.ResponseWriter, r *http.Request) {
	rm, ok := s.loadRoom(w, r)
	if !ok {
		return
	}
	var req seatReq
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if !rm.HasPlayer(req.Player) {
		writeError(w, http.StatusBadRequest, "no_such_player")
		return
	}
	if err := rm.CheckPassphrase(req.Passphrase); err != nil {
		writeError(w, http.StatusForbidden, "wrong_passphrase")
		return
	}
	tok, exp, err := s.seats.sign(rm.ID, req.Player)
	if err != nil {
		log.Error().Err(err).Msg("sign seat token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	writeJSON(w, http.StatusOK, seatRes{Token: tok, Player: req.Player, ExpiresAt: exp})
}

// -----------------------------------------------------------------------------
// GET /rooms/{id}/view

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	rm, ok := s.loadRoom(w, r)
	if !ok {
		return
	}
	seat, err := s.seatFor(r, rm)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if seat == nil {
		writeJSON(w, http.StatusOK, rm.SpectatorView())
		return
	}
	writeJSON(w, http.StatusOK, rm.View(*seat))
}

// -----------------------------------------------------------------------------
// POST /rooms/{id}/actions

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	rm, ok := s.loadRoom(w, r)
	if !ok {
		return
	}
	seat, err := s.seatFor(r, rm)
	if err != nil || seat == nil {
		writeError(w, http.StatusUnauthorized, errBadSeat.Error())
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_body")
		return
	}
	a, err := game.DecodeAction(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := rm.Do(*seat, a); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rm.View(*seat))
}

// -----------------------------------------------------------------------------
// DELETE /rooms/{id}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	rm, ok := s.loadRoom(w, r)
	if !ok {
		return
	}
	if seat, err := s.seatFor(r, rm); err != nil || seat == nil {
		writeError(w, http.StatusUnauthorized, errBadSeat.Error())
		return
	}
	if err := s.store.Delete(r.Context(), rm.ID); err != nil {
		log.Error().Err(err).Str("room", rm.ID).Msg("delete room")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	log.Info().Str("room", rm.ID).Msg("room closed")
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	var ae *game.ActionError
	if errors.As(err, &ae) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// -----------------------------------------------------------------------------
// GET /rooms/{id}/results

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, "results_not_found")
		return
	}
	res, err := s.archive.Get(r.Context(), chi.URLParam(r, "roomID"))
	if errors.Is(err, results.ErrNotFound) {
		writeError(w, http.StatusNotFound, "results_not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// archiveGame is the room game-over hook.
func (s *Server) archiveGame(rm *room.Room, final room.Summary) {
	if s.archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.archive.Record(ctx, results.Game{
		ID:      rm.ID,
		Size:    final.Size,
		Labels:  final.Labels,
		Players: len(final.Players),
		Solved:  final.Outcome.Solved,
		Failed:  final.Outcome.Failed,
	})
	if err != nil {
		log.Error().Err(err).Str("room", rm.ID).Msg("archive results")
		return
	}
	log.Info().Str("room", rm.ID).Msg("results archived")
}
