package model

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	cellLive = '#'
	cellDead = ' '

	clearScreenSeq = "\033[2J\033[;H"
)

// Renderer draws live sets; it is the only place the simulation touches the terminal
type Renderer interface {
	Clear()
	Display(live LiveSet, box BoundingBox)
}

// TerminalRenderer draws a fixed-size viewport of the board as ASCII
type TerminalRenderer struct {
	Out    io.Writer
	Width  int
	Height int
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer, width, height int) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Width: width, Height: height}
}

// Viewport returns the window drawn for box: Width x Height cells centered on the box
func (r *TerminalRenderer) Viewport(box BoundingBox) BoundingBox {
	center := box.Center()
	minCorner := Coord{X: center.X - r.Width/2, Y: center.Y - r.Height/2}
	return BoundingBox{
		Min: minCorner,
		Max: Coord{X: minCorner.X + r.Width - 1, Y: minCorner.Y + r.Height - 1},
	}
}

// Display renders the viewport, highest row first
func (r *TerminalRenderer) Display(live LiveSet, box BoundingBox) {
	view := r.Viewport(box)
	w := bufio.NewWriter(r.Out)
	for y := view.Max.Y; y >= view.Min.Y; y-- {
		for x := view.Min.X; x <= view.Max.X; x++ {
			if live.Contains(Coord{X: x, Y: y}) {
				w.WriteByte(cellLive)
			} else {
				w.WriteByte(cellDead)
			}
		}
		w.WriteByte('\n')
	}
	w.Flush()
}

// Clear clears the terminal screen; it is a no-op when Out is not a terminal
func (r *TerminalRenderer) Clear() {
	f, ok := r.Out.(*os.File)
	if !ok {
		return
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	io.WriteString(f, clearScreenSeq)
}
