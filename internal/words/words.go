// internal/words/words.go
//
// Word catalog loading for grid labels.
//
// Responsibilities:
//   - Load named word lists from a directory or fall back to the embedded defaults.
//   - Expose the loaded lists as a Catalog used by game setup.
//
// Initialization behavior (Init):
//   1. If dir is non-empty, every *.txt file in it becomes a list named by its
//      base name ("animals.txt" -> "animals"). The embedded lists are not used.
//   2. Otherwise the lists embedded in the assets package are loaded.
//
// File format:
//   • One word per line; blank lines and lines starting with '#' are skipped.
//   • Words are trimmed and lowercased; duplicates inside a list collapse.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/robalobadob/crossclues/assets"
)

var (
	initOnce   sync.Once
	catalog    *Catalog
	initialErr error
)

// Init loads the word catalog exactly once.
// Returns an error if no list ends up with any words.
func Init(dir string) error {
	initOnce.Do(func() {
		var lists map[string][]string
		var err error
		if dir != "" {
			lists, err = readDir(dir)
		} else {
			lists, err = assets.WordLists()
		}
		if err != nil {
			initialErr = err
			return
		}
		catalog = NewCatalog(lists)
		if catalog.Size() == 0 {
			initialErr = errors.New("words: catalog is empty")
		}
	})
	return initialErr
}

// Default returns the catalog loaded by Init. If Init was never called the
// embedded lists are loaded on first use.
func Default() *Catalog {
	_ = Init("")
	if catalog == nil {
		return NewCatalog(nil)
	}
	return catalog
}

// readDir loads every *.txt file in dir as a named list.
func readDir(dir string) (map[string][]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("words: no *.txt lists in %s", dir)
	}
	out := make(map[string][]string, len(files))
	for _, f := range files {
		list, err := readWordFile(f)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", f, err)
		}
		out[strings.TrimSuffix(filepath.Base(f), ".txt")] = list
	}
	return out, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize trims and lowercases a line; comments and blanks are rejected.
func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	return w, true
}
