package life

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCellsFromWordsParity(t *testing.T) {
	//'a'=97 odd, 'b'=98 even, 'c'=99 odd, 'd'=100 even
	cells, err := CellsFromWords([]byte("abcd"), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []bool{true, false, true, false}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d: alive=%v, expected %v", i, cells[i], want[i])
		}
	}
}

func TestCellsFromWordsRepeatsShortSource(t *testing.T) {
	cells, err := CellsFromWords([]byte("ab"), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range cells {
		if cells[i] != (i%2 == 0) {
			t.Fatalf("cell %d: alive=%v, source should repeat ababab...", i, cells[i])
		}
	}
}

func TestCellsFromWordsEmptySource(t *testing.T) {
	if _, err := CellsFromWords(nil, 4); err == nil {
		t.Fatal("expected error for empty byte source")
	}
}

func TestWordSeedDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte("Let there be light"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Size = 64
	cfg.Mode = SeedWordFile
	cfg.WordFile = path

	a, err := NewGrid(cfg)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	b, err := NewGrid(cfg)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	for i := 0; i < a.Size(); i++ {
		if a.Alive(i) != b.Alive(i) {
			t.Fatalf("word seed differs between runs at cell %d", i)
		}
	}
}

func TestWordSeedMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Mode = SeedWordFile
	cfg.WordFile = filepath.Join(t.TempDir(), "no_such_file")

	if _, err := NewGrid(cfg); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestRandomSeedShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 256

	g, err := NewGrid(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Size() != 256 || g.Dim() != 16 {
		t.Fatalf("got size=%d dim=%d, want 256/16", g.Size(), g.Dim())
	}
}
