package game

import "encoding/json"

// Vote lists the players currently proposing a tile.
type Vote struct {
	Tile    Tile       `json:"tile"`
	Players []PlayerID `json:"players"`
}

// View is the snapshot of a game sent to one player (or a spectator), with
// hidden information removed.
type View struct {
	Size             Tile       `json:"size"`
	Labels           []string   `json:"labels"`
	Players          []PlayerID `json:"players"`
	PlayersWithTiles []PlayerID `json:"players_with_tiles"`
	PlayerTile       *Tile      `json:"player_tile"`
	CurrentClue      *Clue      `json:"current_clue"`
	Solved           []Clue     `json:"solved"`
	Failed           []Clue     `json:"failed"`
	TilesRemaining   int        `json:"tiles_remaining"`
	Votes            []Vote     `json:"votes"`
	GameOver         bool       `json:"game_over"`
}

// View projects the game for player p. An unknown p sees what a spectator
// sees.
func (g *Game) View(p PlayerID) View { return g.project(&p) }

// SpectatorView projects the game for an observer without a seat.
func (g *Game) SpectatorView() View { return g.project(nil) }

// project builds a redacted snapshot:
//   - the active clue's secret is visible to its owner only;
//   - failed secrets are hidden from everyone until the game is over;
//   - solved records and votes are public;
//   - a player sees only their own held tile, everyone sees who holds one;
//   - the deck is reported as a count.
func (g *Game) project(viewer *PlayerID) View {
	over := g.Over()
	v := View{
		Size:             g.size,
		Labels:           g.Labels(),
		Players:          g.Players(),
		PlayersWithTiles: []PlayerID{},
		Solved:           g.solvedList(),
		Failed:           make([]Clue, 0, len(g.failed)),
		TilesRemaining:   len(g.deck),
		Votes:            []Vote{},
		GameOver:         over,
	}

	for i, t := range g.held {
		if t != nil {
			v.PlayersWithTiles = append(v.PlayersWithTiles, PlayerID(i))
		}
	}
	if viewer != nil {
		if t, ok := g.heldBy(*viewer); ok && t != nil {
			own := *t
			v.PlayerTile = &own
		}
	}

	if g.currentClue != nil {
		c := g.currentClue.clone()
		if viewer == nil || *viewer != c.Owner {
			c.Secret = nil
		}
		v.CurrentClue = &c
	}

	for _, f := range g.failed {
		c := f.clone()
		if !over {
			c.Secret = nil
		}
		v.Failed = append(v.Failed, c)
	}

	for r := range g.votes {
		for c, voters := range g.votes[r] {
			if len(voters) == 0 {
				continue
			}
			v.Votes = append(v.Votes, Vote{
				Tile:    Tile{Row: r, Col: c},
				Players: append([]PlayerID(nil), voters...),
			})
		}
	}
	return v
}

// state is the full authoritative serialization of a Game.
type state struct {
	Size        Tile           `json:"size"`
	Labels      []string       `json:"labels"`
	Players     []PlayerID     `json:"players"`
	PlayerTiles []*Tile        `json:"player_tiles"`
	Deck        []Tile         `json:"deck"`
	CurrentClue *Clue          `json:"current_clue"`
	Votes       [][][]PlayerID `json:"votes"`
	Solved      [][]*Clue      `json:"solved"`
	Failed      []*Clue        `json:"failed"`
}

// MarshalJSON serializes the unredacted state. It must never be sent to
// players; use View for that.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(state{
		Size:        g.size,
		Labels:      g.labels,
		Players:     g.players,
		PlayerTiles: g.held,
		Deck:        g.deck,
		CurrentClue: g.currentClue,
		Votes:       g.votes,
		Solved:      g.solved,
		Failed:      g.failed,
	})
}
