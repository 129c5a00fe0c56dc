// Package results archives finished games so their outcome records can be
// revealed and scored after the room is gone. No score is computed here.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/crossclues/internal/game"
)

var ErrNotFound = errors.New("results not found")

type Game struct {
	ID         string      `json:"id"`
	Size       game.Tile   `json:"size"`
	Labels     []string    `json:"labels"`
	Players    int         `json:"players"`
	Solved     []game.Clue `json:"solved"`
	Failed     []game.Clue `json:"failed"`
	FinishedAt time.Time   `json:"finishedAt"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record stores a finished game. Recording the same ID again is a no-op.
func (s *Store) Record(ctx context.Context, g Game) error {
	labels, err := json.Marshal(g.Labels)
	if err != nil {
		return err
	}
	if g.FinishedAt.IsZero() {
		g.FinishedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO games(id, grid_rows, grid_cols, players, labels, finished_at)
VALUES(?,?,?,?,?,?)`,
		g.ID, g.Size.Row, g.Size.Col, g.Players, string(labels), g.FinishedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}

	for kind, clues := range map[string][]game.Clue{"solved": g.Solved, "failed": g.Failed} {
		for i, c := range clues {
			if c.Secret == nil || c.Guess == nil || c.Guesser == nil {
				return fmt.Errorf("%s clue %d is not resolved", kind, i)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO clues(game_id, seq, kind, owner, secret_row, secret_col, text, guess_row, guess_col, guesser)
VALUES(?,?,?,?,?,?,?,?,?,?)`,
				g.ID, i, kind, int(c.Owner), c.Secret.Row, c.Secret.Col, c.Text,
				c.Guess.Row, c.Guess.Col, int(*c.Guesser),
			); err != nil {
				return fmt.Errorf("insert %s clue: %w", kind, err)
			}
		}
	}
	return tx.Commit()
}

// Get loads an archived game with its clues in their recorded order.
func (s *Store) Get(ctx context.Context, id string) (*Game, error) {
	g := Game{ID: id, Solved: []game.Clue{}, Failed: []game.Clue{}}
	var labels, finished string
	err := s.db.QueryRowContext(ctx,
		`SELECT grid_rows, grid_cols, players, labels, finished_at FROM games WHERE id=?`, id,
	).Scan(&g.Size.Row, &g.Size.Col, &g.Players, &labels, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(labels), &g.Labels); err != nil {
		return nil, fmt.Errorf("decode labels: %w", err)
	}
	g.FinishedAt, _ = time.Parse(time.RFC3339, finished)

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, owner, secret_row, secret_col, text, guess_row, guess_col, guesser
FROM clues WHERE game_id=? ORDER BY kind, seq`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var kind, text string
		var owner, guesser int
		var secret, guess game.Tile
		if err := rows.Scan(&kind, &owner, &secret.Row, &secret.Col, &text, &guess.Row, &guess.Col, &guesser); err != nil {
			return nil, err
		}
		who := game.PlayerID(guesser)
		c := game.Clue{Owner: game.PlayerID(owner), Secret: &secret, Text: text, Guess: &guess, Guesser: &who}
		if kind == "solved" {
			g.Solved = append(g.Solved, c)
		} else {
			g.Failed = append(g.Failed, c)
		}
	}
	return &g, rows.Err()
}
