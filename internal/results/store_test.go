package results

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/robalobadob/crossclues/internal/db"
	"github.com/robalobadob/crossclues/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(sqlDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(sqlDB)
}

func resolved(owner, guesser game.PlayerID, secret, guess game.Tile, text string) game.Clue {
	return game.Clue{Owner: owner, Secret: &secret, Text: text, Guess: &guess, Guesser: &guesser}
}

func TestRecordAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	in := Game{
		ID:      "room-1",
		Size:    game.Tile{Row: 2, Col: 2},
		Labels:  []string{"cat", "dog", "sun", "moon"},
		Players: 2,
		Solved: []game.Clue{
			resolved(0, 1, game.Tile{Row: 0, Col: 0}, game.Tile{Row: 0, Col: 0}, "pet"),
			resolved(1, 0, game.Tile{Row: 1, Col: 1}, game.Tile{Row: 1, Col: 1}, "night"),
		},
		Failed: []game.Clue{
			resolved(0, 1, game.Tile{Row: 0, Col: 1}, game.Tile{Row: 1, Col: 0}, "bark"),
		},
		FinishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := s.Record(ctx, in); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.Get(ctx, "room-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.FinishedAt.Equal(in.FinishedAt) {
		t.Errorf("finishedAt = %v, want %v", got.FinishedAt, in.FinishedAt)
	}
	got.FinishedAt = in.FinishedAt
	if !reflect.DeepEqual(*got, in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, in)
	}
}

func TestRecordTwiceIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	g := Game{ID: "dup", Size: game.Tile{Row: 1, Col: 1}, Labels: []string{"a", "b"}, Players: 1,
		Solved: []game.Clue{resolved(0, 1, game.Tile{}, game.Tile{}, "x")}}
	if err := s.Record(ctx, g); err != nil {
		t.Fatal(err)
	}
	g.Labels = []string{"changed", "labels"}
	if err := s.Record(ctx, g); err != nil {
		t.Fatalf("second Record: %v", err)
	}
	got, err := s.Get(ctx, "dup")
	if err != nil {
		t.Fatal(err)
	}
	if got.Labels[0] != "a" || len(got.Solved) != 1 {
		t.Errorf("second record overwrote the first: %+v", got)
	}
}

func TestRecordRejectsUnresolvedClue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	secret := game.Tile{}
	g := Game{ID: "bad", Size: game.Tile{Row: 1, Col: 1}, Labels: []string{"a", "b"}, Players: 1,
		Failed: []game.Clue{{Owner: 0, Secret: &secret, Text: "open"}}}
	if err := s.Record(ctx, g); err == nil {
		t.Fatal("expected an error for an unresolved clue")
	}
	if _, err := s.Get(ctx, "bad"); !errors.Is(err, ErrNotFound) {
		t.Errorf("partial record left behind: %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
