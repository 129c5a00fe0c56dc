// internal/game/engine.go
//
// Core rules engine for a single Cross Clues game.
// Responsibilities:
//   - Set up a game: shuffle the grid, deal one secret tile per player, keep the
//     rest as the deck, draw row/column labels from the word pool.
//   - Validate and apply actions (give clue, set vote, tap tile) atomically.
//   - Replenish the clue-giver's secret from the deck after every resolved guess.
//   - Report game over: deck empty and nobody holds a secret.
//
// Notes:
//   - A Game is not safe for concurrent use; the host serializes access.
//   - Every tile is in exactly one place: a player's hand, the deck, or a
//     resolved clue (solved or failed).
//   - Votes and solved records are dense [row][col] arrays sized at setup.
package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"

	"github.com/robalobadob/crossclues/internal/words"
)

// Game is the authoritative state of one game.
type Game struct {
	size        Tile
	labels      []string // first size.Row are row labels, then columns
	players     []PlayerID
	held        []*Tile // indexed by PlayerID; nil when nothing is held
	deck        []Tile  // pop-only
	currentClue *Clue
	votes       [][][]PlayerID
	solved      [][]*Clue
	failed      []*Clue
}

// New sets up a game using the loaded word catalog and a randomly seeded
// source.
func New(cfg Config, numPlayers int) (*Game, error) {
	return NewWith(cfg, numPlayers, words.Default(), rand.New(rand.NewPCG(seed())))
}

// NewWith sets up a game from an explicit catalog and random source.
func NewWith(cfg Config, numPlayers int, cat *words.Catalog, rng *rand.Rand) (*Game, error) {
	if numPlayers < 1 || numPlayers > MaxPlayers {
		return nil, creationErrorf("player count %d must be between 1 and %d", numPlayers, MaxPlayers)
	}
	if err := cfg.validate(cat); err != nil {
		return nil, err
	}
	size := cfg.Size
	need := size.Row + size.Col
	pool := cfg.wordPool(cat)
	if len(pool) < need {
		return nil, creationErrorf("need %d distinct words for a %dx%d grid, only %d available",
			need, size.Row, size.Col, len(pool))
	}

	g := &Game{
		size:    size,
		players: make([]PlayerID, numPlayers),
		held:    make([]*Tile, numPlayers),
		deck:    make([]Tile, 0, size.Row*size.Col),
		votes:   make([][][]PlayerID, size.Row),
		solved:  make([][]*Clue, size.Row),
	}
	for r := 0; r < size.Row; r++ {
		g.votes[r] = make([][]PlayerID, size.Col)
		g.solved[r] = make([]*Clue, size.Col)
		for c := 0; c < size.Col; c++ {
			g.deck = append(g.deck, Tile{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(g.deck), func(i, j int) { g.deck[i], g.deck[j] = g.deck[j], g.deck[i] })
	for i := range g.players {
		g.players[i] = PlayerID(i)
		g.held[i] = g.popDeck()
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	g.labels = append([]string(nil), pool[:need]...)
	return g, nil
}

// seed draws a PCG seed from crypto/rand.
func seed() (uint64, uint64) {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
}

// Players returns the seats in order. Stable for the lifetime of the game.
func (g *Game) Players() []PlayerID {
	return append([]PlayerID(nil), g.players...)
}

// Size returns the grid dimensions.
func (g *Game) Size() Tile { return g.size }

// Labels returns row labels followed by column labels.
func (g *Game) Labels() []string {
	return append([]string(nil), g.labels...)
}

// DoAction validates and applies one action for player p. On error the
// state is left exactly as it was.
func (g *Game) DoAction(p PlayerID, a Action) error {
	switch a := a.(type) {
	case GiveClue:
		return g.giveClue(p, a)
	case SetVote:
		return g.setVote(p, a)
	case TapTile:
		return g.tapTile(p, a)
	default:
		return ErrUnknownAction
	}
}

func (g *Game) giveClue(p PlayerID, a GiveClue) error {
	if g.currentClue != nil {
		return ErrClueActive
	}
	secret, ok := g.heldBy(p)
	if !ok || secret == nil {
		return ErrNoSecret
	}
	text := strings.TrimSpace(a.Clue)
	if text == "" {
		return ErrEmptyClue
	}
	s := *secret
	g.currentClue = &Clue{Owner: p, Secret: &s, Text: text}
	return nil
}

func (g *Game) setVote(p PlayerID, a SetVote) error {
	if err := g.checkTarget(p, a.Tile); err != nil {
		return err
	}
	if g.currentClue == nil {
		return ErrNoActiveClue
	}
	if g.currentClue.Owner == p {
		return ErrOwnClueVote
	}

	voters := g.votes[a.Tile.Row][a.Tile.Col]
	idx := -1
	for i, v := range voters {
		if v == p {
			idx = i
			break
		}
	}
	switch {
	case a.Vote && idx < 0:
		g.votes[a.Tile.Row][a.Tile.Col] = append(voters, p)
	case !a.Vote && idx >= 0:
		g.votes[a.Tile.Row][a.Tile.Col] = append(voters[:idx], voters[idx+1:]...)
	}
	return nil
}

func (g *Game) tapTile(p PlayerID, a TapTile) error {
	if g.currentClue == nil {
		return ErrNoActiveClue
	}
	if err := g.checkTarget(p, a.Tile); err != nil {
		return err
	}
	if g.currentClue.Owner == p {
		return ErrOwnClueGuess
	}

	// All checks passed; nothing below can fail.
	g.clearVotes()
	clue := g.currentClue
	g.currentClue = nil
	g.held[clue.Owner] = g.popDeck()

	guess, guesser := a.Tile, p
	clue.Guess = &guess
	clue.Guesser = &guesser
	if clue.Solved() {
		g.solved[guess.Row][guess.Col] = clue
	} else {
		g.failed = append(g.failed, clue)
	}
	return nil
}

// checkTarget validates the actor and a target tile shared by votes and taps.
func (g *Game) checkTarget(p PlayerID, t Tile) error {
	if _, ok := g.heldBy(p); !ok {
		return ErrUnknownPlayer
	}
	if !t.within(g.size) {
		return ErrOutOfBounds
	}
	if g.solved[t.Row][t.Col] != nil {
		return ErrTileSolved
	}
	return nil
}

// heldBy returns the secret held by p; ok is false for an unknown player.
func (g *Game) heldBy(p PlayerID) (*Tile, bool) {
	if p < 0 || int(p) >= len(g.held) {
		return nil, false
	}
	return g.held[p], true
}

// popDeck removes the last deck tile, or returns nil when the deck is empty.
func (g *Game) popDeck() *Tile {
	n := len(g.deck)
	if n == 0 {
		return nil
	}
	t := g.deck[n-1]
	g.deck = g.deck[:n-1]
	return &t
}

func (g *Game) clearVotes() {
	for r := range g.votes {
		for c := range g.votes[r] {
			g.votes[r][c] = nil
		}
	}
}

// Over reports whether the deck is empty and nobody holds a secret.
func (g *Game) Over() bool {
	if len(g.deck) > 0 {
		return false
	}
	for _, t := range g.held {
		if t != nil {
			return false
		}
	}
	return true
}

// Outcome is the unredacted record of resolved clues, for scoring and
// archiving outside the engine.
type Outcome struct {
	Solved []Clue `json:"solved"` // row-major by tile
	Failed []Clue `json:"failed"` // in resolution order
	Over   bool   `json:"over"`
}

// Outcome returns copies of every resolved clue record.
func (g *Game) Outcome() Outcome {
	out := Outcome{Solved: g.solvedList(), Failed: make([]Clue, 0, len(g.failed)), Over: g.Over()}
	for _, c := range g.failed {
		out.Failed = append(out.Failed, c.clone())
	}
	return out
}

func (g *Game) solvedList() []Clue {
	out := []Clue{}
	for r := range g.solved {
		for _, c := range g.solved[r] {
			if c != nil {
				out = append(out, c.clone())
			}
		}
	}
	return out
}
