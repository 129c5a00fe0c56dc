package game

import (
	"encoding/json"
	"testing"
)

func TestDecodeAction(t *testing.T) {
	cases := []struct {
		in   string
		want Action
	}{
		{`{"type":"give_clue","clue":"ocean"}`, GiveClue{Clue: "ocean"}},
		{`{"type":"set_vote","tile":{"row":1,"col":2},"vote":true}`, SetVote{Tile: Tile{Row: 1, Col: 2}, Vote: true}},
		{`{"type":"set_vote","tile":{"row":0,"col":0},"vote":false}`, SetVote{Tile: Tile{}, Vote: false}},
		{`{"type":"tap_tile","tile":{"row":3,"col":0}}`, TapTile{Tile: Tile{Row: 3}}},
	}
	for _, tc := range cases {
		got, err := DecodeAction([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestDecodeActionErrors(t *testing.T) {
	for _, in := range []string{
		`not json`,
		`{"type":"dance"}`,
		`{"clue":"no type"}`,
		`{"type":"give_clue"}`,
		`{"type":"set_vote","tile":{"row":1,"col":1}}`,
		`{"type":"tap_tile"}`,
	} {
		if _, err := DecodeAction([]byte(in)); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestActionWireShape(t *testing.T) {
	cases := []struct {
		a    Action
		want string
	}{
		{GiveClue{Clue: "moon"}, `{"type":"give_clue","clue":"moon"}`},
		{SetVote{Tile: Tile{Row: 1, Col: 0}, Vote: true}, `{"type":"set_vote","tile":{"row":1,"col":0},"vote":true}`},
		{TapTile{Tile: Tile{Row: 2, Col: 3}}, `{"type":"tap_tile","tile":{"row":2,"col":3}}`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.a)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != tc.want {
			t.Errorf("got %s, want %s", b, tc.want)
		}
		back, err := DecodeAction(b)
		if err != nil || back != tc.a {
			t.Errorf("decode %s: %#v, %v", b, back, err)
		}
	}
}

func TestTileOrder(t *testing.T) {
	if !(Tile{Row: 0, Col: 5}).Less(Tile{Row: 1, Col: 0}) {
		t.Error("rows order first")
	}
	if !(Tile{Row: 1, Col: 0}).Less(Tile{Row: 1, Col: 1}) {
		t.Error("cols break ties")
	}
	if (Tile{Row: 1, Col: 1}).Less(Tile{Row: 1, Col: 1}) {
		t.Error("a tile is not less than itself")
	}
}
