package game

import (
	"sort"
	"strings"

	"github.com/robalobadob/crossclues/internal/words"
)

const (
	// MaxDimension bounds both grid dimensions.
	MaxDimension = 16
	// MaxPlayers bounds the number of seats in one game.
	MaxPlayers = 32

	defaultRows = 4
	defaultCols = 4
)

// WordListToggle selects whether a catalog list feeds the label pool.
type WordListToggle struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Config is the setup input for a game. It is validated once by New and
// never mutated afterwards.
type Config struct {
	Size        Tile             `json:"size"`
	WordLists   []WordListToggle `json:"word_lists"`
	CustomWords []string         `json:"custom_words"`
}

// DefaultConfig is a 4x4 grid drawing from every list of the loaded catalog.
func DefaultConfig() Config {
	return DefaultConfigFor(words.Default())
}

// DefaultConfigFor is DefaultConfig for an explicit catalog.
func DefaultConfigFor(cat *words.Catalog) Config {
	cfg := Config{Size: Tile{Row: defaultRows, Col: defaultCols}}
	for _, name := range cat.Names() {
		cfg.WordLists = append(cfg.WordLists, WordListToggle{Name: name, Enabled: true})
	}
	return cfg
}

func (c Config) validate(cat *words.Catalog) error {
	if c.Size.Row < 1 || c.Size.Col < 1 {
		return creationErrorf("grid size %dx%d must be at least 1x1", c.Size.Row, c.Size.Col)
	}
	if c.Size.Row > MaxDimension || c.Size.Col > MaxDimension {
		return creationErrorf("grid size %dx%d exceeds %dx%d", c.Size.Row, c.Size.Col, MaxDimension, MaxDimension)
	}
	for _, wl := range c.WordLists {
		if _, ok := cat.List(wl.Name); !ok {
			return creationErrorf("unknown word list %q", wl.Name)
		}
	}
	return nil
}

// wordPool unions the enabled lists with the custom words. Enabled lists
// contribute in config order, custom words sorted, so a seeded setup is
// reproducible.
func (c Config) wordPool(cat *words.Catalog) []string {
	seen := make(map[string]struct{})
	var pool []string
	add := func(w string) {
		w = strings.TrimSpace(w)
		if w == "" {
			return
		}
		if _, dup := seen[w]; dup {
			return
		}
		seen[w] = struct{}{}
		pool = append(pool, w)
	}
	for _, wl := range c.WordLists {
		if !wl.Enabled {
			continue
		}
		list, _ := cat.List(wl.Name)
		for _, w := range list {
			add(w)
		}
	}
	custom := append([]string(nil), c.CustomWords...)
	sort.Strings(custom)
	for _, w := range custom {
		add(w)
	}
	return pool
}
