package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewCatalogNormalizes(t *testing.T) {
	c := NewCatalog(map[string][]string{
		"b": {"  Apple ", "apple", "# comment", "", "Pear"},
		"a": {"x"},
	})

	if got, want := c.Names(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	got, ok := c.List("b")
	if !ok {
		t.Fatal("list b missing")
	}
	if want := []string{"apple", "pear"}; !reflect.DeepEqual(got, want) {
		t.Errorf("list b = %v, want %v", got, want)
	}
	if _, ok := c.List("missing"); ok {
		t.Error("unknown list should not be found")
	}
	if c.Size() != 3 {
		t.Errorf("size = %d, want 3", c.Size())
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c := Default()
	if len(c.Names()) == 0 {
		t.Fatal("expected embedded lists")
	}
	classic, ok := c.List("classic")
	if !ok {
		t.Fatal("expected a classic list")
	}
	if len(classic) < 50 {
		t.Errorf("classic list too small: %d", len(classic))
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "animals.txt"), []byte("cat\nDog\n\n# skip\ncat\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	lists, err := readDir(dir)
	if err != nil {
		t.Fatalf("readDir: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(lists))
	}
	c := NewCatalog(lists)
	got, _ := c.List("animals")
	if want := []string{"cat", "dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("animals = %v, want %v", got, want)
	}
}

func TestReadDirEmpty(t *testing.T) {
	if _, err := readDir(t.TempDir()); err == nil {
		t.Error("expected error for a directory without lists")
	}
}
