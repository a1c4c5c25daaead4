package view

import (
	"bytes"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/militantwalrus/life/src/life"
)

//ansiClear clears the screen and homes the cursor (ascii terms only)
const ansiClear = "\x1b[2J\x1b[H"

//Console renders each generation as a bordered text frame:
//+---+ top and bottom, one glyph per cell, cells separated by pipes
type Console struct {
	out   io.Writer
	alive string
	dead  string
}

//NewConsole creates a Console writing frames to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:   out,
		alive: aurora.Green("*").String(),
		dead:  "·", //middle dot
	}
}

//Draw writes one full frame, clearing the screen first
func (c *Console) Draw(g life.Grid, _ life.Status) error {
	dim := g.Dim()
	border := "+" + strings.Repeat("-", dim*2-1) + "+\n"

	var b bytes.Buffer
	b.WriteString(ansiClear)
	b.WriteString(border)
	for row := 0; row < dim; row++ {
		b.WriteByte('|')
		for col := 0; col < dim; col++ {
			if col != 0 {
				b.WriteByte('|')
			}
			if g.Alive(row*dim + col) {
				b.WriteString(c.alive)
			} else {
				b.WriteString(c.dead)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	_, err := c.out.Write(b.Bytes())
	return err
}
