package words

import "sort"

// Catalog is an immutable set of named word lists.
type Catalog struct {
	names []string
	lists map[string][]string
}

// NewCatalog builds a catalog from raw lists. Each list is normalized and
// de-duplicated, keeping first-seen order.
func NewCatalog(lists map[string][]string) *Catalog {
	c := &Catalog{lists: make(map[string][]string, len(lists))}
	for name, raw := range lists {
		seen := make(map[string]struct{}, len(raw))
		words := make([]string, 0, len(raw))
		for _, line := range raw {
			w, ok := normalize(line)
			if !ok {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
		c.names = append(c.names, name)
		c.lists[name] = words
	}
	sort.Strings(c.names)
	return c
}

// Names returns the list names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// List returns the words of a named list.
func (c *Catalog) List(name string) ([]string, bool) {
	w, ok := c.lists[name]
	return w, ok
}

// Size counts the words across all lists (duplicates between lists included).
func (c *Catalog) Size() int {
	n := 0
	for _, w := range c.lists {
		n += len(w)
	}
	return n
}

// Stats returns per-list word counts.
func (c *Catalog) Stats() map[string]int {
	out := make(map[string]int, len(c.lists))
	for name, w := range c.lists {
		out[name] = len(w)
	}
	return out
}
