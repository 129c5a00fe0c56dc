// internal/game/action.go
//
// Player actions. Action is a closed set: only the three variants below
// implement it, and Game.DoAction switches over them exhaustively.
//
// Wire shape (JSON, tagged by "type"):
//   {"type":"give_clue","clue":"..."}
//   {"type":"set_vote","tile":{"row":0,"col":1},"vote":true}
//   {"type":"tap_tile","tile":{"row":0,"col":1}}

package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TypeGiveClue = "give_clue"
	TypeSetVote  = "set_vote"
	TypeTapTile  = "tap_tile"
)

// Action is a player-initiated operation.
type Action interface {
	Type() string
	isAction()
}

// GiveClue offers a clue for the actor's held secret.
type GiveClue struct {
	Clue string `json:"clue"`
}

// SetVote adds (Vote=true) or removes the actor's vote on a tile.
type SetVote struct {
	Tile Tile `json:"tile"`
	Vote bool `json:"vote"`
}

// TapTile guesses a tile for the active clue.
type TapTile struct {
	Tile Tile `json:"tile"`
}

func (GiveClue) Type() string { return TypeGiveClue }
func (SetVote) Type() string  { return TypeSetVote }
func (TapTile) Type() string  { return TypeTapTile }

func (GiveClue) isAction() {}
func (SetVote) isAction()  {}
func (TapTile) isAction()  {}

func (a GiveClue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Clue string `json:"clue"`
	}{TypeGiveClue, a.Clue})
}

func (a SetVote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Tile Tile   `json:"tile"`
		Vote bool   `json:"vote"`
	}{TypeSetVote, a.Tile, a.Vote})
}

func (a TapTile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Tile Tile   `json:"tile"`
	}{TypeTapTile, a.Tile})
}

var errMissingField = errors.New("missing field")

// DecodeAction parses a tagged action. Every field of the variant is required.
func DecodeAction(data []byte) (Action, error) {
	var raw struct {
		Type string  `json:"type"`
		Clue *string `json:"clue"`
		Tile *Tile   `json:"tile"`
		Vote *bool   `json:"vote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	switch raw.Type {
	case TypeGiveClue:
		if raw.Clue == nil {
			return nil, fmt.Errorf("decode %s: %w: clue", raw.Type, errMissingField)
		}
		return GiveClue{Clue: *raw.Clue}, nil
	case TypeSetVote:
		if raw.Tile == nil || raw.Vote == nil {
			return nil, fmt.Errorf("decode %s: %w: tile and vote", raw.Type, errMissingField)
		}
		return SetVote{Tile: *raw.Tile, Vote: *raw.Vote}, nil
	case TypeTapTile:
		if raw.Tile == nil {
			return nil, fmt.Errorf("decode %s: %w: tile", raw.Type, errMissingField)
		}
		return TapTile{Tile: *raw.Tile}, nil
	default:
		return nil, fmt.Errorf("decode action: unknown type %q", raw.Type)
	}
}
