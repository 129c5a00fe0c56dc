// internal/room/room.go
//
// A Room hosts one game and is the only path to it.
// Responsibilities:
//   - Serialize actions: Do holds the write lock for the whole transition.
//   - Serve views under the read lock so a view never sees a half-applied action.
//   - Push a fresh view to every subscriber after each successful action.
//   - Fire the game-over hook exactly once when an action ends the game.
//   - Guard seats with an optional bcrypt-hashed passphrase.

package room

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/crossclues/internal/game"
)

// ErrBadPassphrase is returned by CheckPassphrase on a mismatch.
var ErrBadPassphrase = errors.New("wrong passphrase")

// GameOverFunc receives the final state of a finished room.
type GameOverFunc func(r *Room, final Summary)

// Summary is the public, unredacted record of a finished game.
type Summary struct {
	Size    game.Tile       `json:"size"`
	Labels  []string        `json:"labels"`
	Players []game.PlayerID `json:"players"`
	Outcome game.Outcome    `json:"outcome"`
}

// Room wraps one game behind a single-writer lock.
type Room struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	g        *game.Game
	passHash []byte
	subs     map[*Subscription]struct{}
	onOver   GameOverFunc
	finished bool
}

// Option configures a Room.
type Option func(*Room) error

// WithPassphrase requires pass before seats are handed out. An empty
// passphrase leaves the room open.
func WithPassphrase(pass string) Option {
	return func(r *Room) error {
		if pass == "" {
			return nil
		}
		h, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		r.passHash = h
		return nil
	}
}

// WithGameOver registers a hook called once, outside the lock, when the game ends.
func WithGameOver(fn GameOverFunc) Option {
	return func(r *Room) error {
		r.onOver = fn
		return nil
	}
}

// New wraps g. The ID is assigned by the store.
func New(g *game.Game, opts ...Option) (*Room, error) {
	r := &Room{
		CreatedAt: time.Now().UTC(),
		g:         g,
		subs:      make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Do applies an action for player p. Subscribers get new views on success.
func (r *Room) Do(p game.PlayerID, a game.Action) error {
	r.mu.Lock()
	if err := r.g.DoAction(p, a); err != nil {
		r.mu.Unlock()
		log.Debug().Str("room", r.ID).Int("player", int(p)).Str("action", actionType(a)).
			Err(err).Msg("action rejected")
		return err
	}
	log.Debug().Str("room", r.ID).Int("player", int(p)).Str("action", actionType(a)).Msg("action applied")

	r.broadcastLocked()
	var final *Summary
	if !r.finished && r.g.Over() {
		r.finished = true
		s := r.summaryLocked()
		final = &s
	}
	hook := r.onOver
	r.mu.Unlock()

	if final != nil {
		log.Info().Str("room", r.ID).Int("solved", len(final.Outcome.Solved)).
			Int("failed", len(final.Outcome.Failed)).Msg("game over")
		if hook != nil {
			hook(r, *final)
		}
	}
	return nil
}

func actionType(a game.Action) string {
	if a == nil {
		return ""
	}
	return a.Type()
}

// View returns player p's redacted view.
func (r *Room) View(p game.PlayerID) game.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.g.View(p)
}

// SpectatorView returns the view for an observer without a seat.
func (r *Room) SpectatorView() game.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.g.SpectatorView()
}

// Players returns the seats of the hosted game.
func (r *Room) Players() []game.PlayerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.g.Players()
}

// HasPlayer reports whether p is a seat in this room.
func (r *Room) HasPlayer(p game.PlayerID) bool {
	return p >= 0 && int(p) < len(r.Players())
}

// Over reports whether the hosted game has ended.
func (r *Room) Over() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.g.Over()
}

func (r *Room) summaryLocked() Summary {
	return Summary{
		Size:    r.g.Size(),
		Labels:  r.g.Labels(),
		Players: r.g.Players(),
		Outcome: r.g.Outcome(),
	}
}

// Locked reports whether the room requires a passphrase.
func (r *Room) Locked() bool { return len(r.passHash) > 0 }

// CheckPassphrase verifies pass against the room passphrase. Open rooms
// accept anything.
func (r *Room) CheckPassphrase(pass string) error {
	if !r.Locked() {
		return nil
	}
	if bcrypt.CompareHashAndPassword(r.passHash, []byte(pass)) != nil {
		return ErrBadPassphrase
	}
	return nil
}
