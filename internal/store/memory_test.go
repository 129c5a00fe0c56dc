package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/robalobadob/crossclues/internal/game"
	"github.com/robalobadob/crossclues/internal/room"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	g, err := game.New(game.DefaultConfig(), 2)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	r, err := room.New(g)
	if err != nil {
		t.Fatalf("room.New: %v", err)
	}
	return r
}

func TestSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := newRoom(t)
	if err := s.Save(ctx, r); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("room id %q is not a UUID: %v", r.ID, err)
	}
	got, err := s.Get(ctx, r.ID)
	if err != nil || got != r {
		t.Errorf("Get = %v, %v", got, err)
	}
}

func TestGetDeleteList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	r1, r2 := newRoom(t), newRoom(t)
	r1.ID, r2.ID = "a", "b"
	r2.CreatedAt = r1.CreatedAt.Add(1)
	_ = s.Save(ctx, r2)
	_ = s.Save(ctx, r1)

	list, _ := s.List(ctx)
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("list order wrong: %v", list)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Error("deleted room still present")
	}
}
