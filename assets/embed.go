// Package assets embeds the default word lists shipped with the server.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed wordlists/*.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordLists returns every embedded list keyed by file base name
// ("wordlists/nature.txt" -> "nature").
func WordLists() (map[string][]string, error) {
	names, err := fs.Glob(FS, "wordlists/*.txt")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	out := make(map[string][]string, len(names))
	for _, n := range names {
		words, err := readLines(n)
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(path.Base(n), ".txt")] = words
	}
	return out, nil
}
