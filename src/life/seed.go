package life

import (
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

//NewGrid builds generation 0 according to the configured seed mode
func NewGrid(c Config) (Grid, error) {
	if c.Mode == SeedWordFile {
		return wordGrid(c.WordFile, c.Size)
	}
	return randomGrid(c.Size), nil
}

//randomGrid marks every cell alive or dead with even odds
func randomGrid(size int) Grid {
	cells := make([]bool, size)
	for i := range cells {
		cells[i] = rand.Float64() >= 0.5
	}
	g, _ := FromCells(cells)
	return g
}

//wordGrid seeds the grid from the parity of the bytes in path
func wordGrid(path string, size int) (Grid, error) {
	words, err := os.ReadFile(path)
	if err != nil {
		return Grid{}, errors.Wrapf(err, "reading seed file %s", path)
	}
	cells, err := CellsFromWords(words, size)
	if err != nil {
		return Grid{}, errors.Wrapf(err, "seed file %s", path)
	}
	return FromCells(cells)
}

//CellsFromWords maps a byte source to cell states: a cell is alive iff
//its byte is odd. The source repeats when it is shorter than size.
func CellsFromWords(words []byte, size int) ([]bool, error) {
	if len(words) == 0 {
		return nil, errors.New("byte source is empty")
	}
	cells := make([]bool, size)
	for i := range cells {
		cells[i] = words[i%len(words)]%2 == 1
	}
	return cells, nil
}
