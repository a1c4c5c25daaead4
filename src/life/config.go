package life

import (
	"time"

	"github.com/pkg/errors"
)

//SeedMode selects how generation 0 is populated
type SeedMode int

const (
	//SeedRandom populates the grid from a pseudo-random source
	SeedRandom SeedMode = iota
	//SeedWordFile populates the grid from the parity bits of a byte source
	SeedWordFile
)

//default options
const (
	DefSize     = 1024
	DefInterval = time.Second
	DefWordFile = "gods_word"
)

//Config represents the simulation's configurable options
//it is validated once at startup and never changes afterwards
type Config struct {
	Size       int           //total cell count, must have an integer square root
	Iterations int           //generation limit, 0 means unlimited
	Interval   time.Duration //wait between generations
	Mode       SeedMode
	WordFile   string //byte source for SeedWordFile
}

//DefaultConfig returns the options used when no flags are given
func DefaultConfig() Config {
	return Config{
		Size:     DefSize,
		Interval: DefInterval,
		WordFile: DefWordFile,
	}
}

//Dim returns the side length implied by Size
func (c Config) Dim() int {
	return intSqrt(c.Size)
}

//Validate rejects configurations the simulation cannot run with.
//A size without an integer square root is fatal here: running with a
//truncated dim would leave Size inconsistent with Dim*Dim and silently
//drop cells.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("grid size must be positive, got %d", c.Size)
	}
	if d := c.Dim(); d*d != c.Size {
		return errors.Errorf("specified size %d does not have an integer square root. Please choose again", c.Size)
	}
	if c.Iterations < 0 {
		return errors.Errorf("iteration limit must not be negative, got %d", c.Iterations)
	}
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Mode == SeedWordFile && c.WordFile == "" {
		return errors.New("word-seed mode needs a seed file")
	}
	return nil
}
