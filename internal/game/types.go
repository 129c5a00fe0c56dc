// internal/game/types.go
//
// Core type definitions for the Cross Clues rules engine.
// Defines:
//   - PlayerID: seat index of a player in one game (0..n-1).
//   - Tile: a (row, col) grid address, also the identity of a secret cell.
//   - Clue: one round's clue record, active until a guess resolves it.

package game

import "fmt"

// PlayerID identifies a seat in a game. Seats are numbered from zero in the
// order returned by Game.Players.
type PlayerID int

// Tile is a grid coordinate. Tiles order row-major.
type Tile struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less reports whether t sorts before o in row-major order.
func (t Tile) Less(o Tile) bool {
	if t.Row != o.Row {
		return t.Row < o.Row
	}
	return t.Col < o.Col
}

func (t Tile) String() string { return fmt.Sprintf("(%d,%d)", t.Row, t.Col) }

// within reports whether t addresses a cell of a grid of the given size.
func (t Tile) within(size Tile) bool {
	return t.Row >= 0 && t.Row < size.Row && t.Col >= 0 && t.Col < size.Col
}

// Clue is a clue record. Secret is always set on the authoritative copy and
// may be nil in a projected view. Guess and Guesser are nil while the clue is
// active and set once a tap resolves it.
type Clue struct {
	Owner   PlayerID  `json:"owner"`
	Secret  *Tile     `json:"secret"`
	Text    string    `json:"text"`
	Guess   *Tile     `json:"guess"`
	Guesser *PlayerID `json:"guesser"`
}

// Solved reports whether a resolved clue's guess hit its secret.
func (c *Clue) Solved() bool {
	return c.Guess != nil && c.Secret != nil && *c.Guess == *c.Secret
}

// clone returns a deep copy so projections never alias authoritative state.
func (c *Clue) clone() Clue {
	out := Clue{Owner: c.Owner, Text: c.Text}
	if c.Secret != nil {
		s := *c.Secret
		out.Secret = &s
	}
	if c.Guess != nil {
		g := *c.Guess
		out.Guess = &g
	}
	if c.Guesser != nil {
		p := *c.Guesser
		out.Guesser = &p
	}
	return out
}
