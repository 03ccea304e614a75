package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Style is the colour and emphasis of a single cell.
// An empty colour leaves the terminal default in place.
type Style struct {
	Fg      lipgloss.Color
	Bg      lipgloss.Color
	Bold    bool
	Reverse bool
}

func (s Style) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// Cell is one column of a Buffer. The columns a wide glyph spans after its
// first hold an empty Symbol.
type Cell struct {
	Symbol string
	Style  Style
}

// Buffer is a grid of styled cells covering Area.
type Buffer struct {
	Area  Rect
	cells []Cell
}

// NewBuffer creates a Buffer filled with blanks.
func NewBuffer(area Rect) *Buffer {
	n := 0
	if !area.Empty() {
		n = area.Width * area.Height
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i].Symbol = " "
	}
	return &Buffer{Area: area, cells: cells}
}

func (b *Buffer) index(x, y int) int {
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X)
}

// Cell returns the cell at (x, y). Positions outside Area yield a zero Cell.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.Area.ContainsPoint(x, y) {
		return Cell{}
	}
	return b.cells[b.index(x, y)]
}

// Set writes one symbol at (x, y). Writes outside Area are dropped.
func (b *Buffer) Set(x, y int, symbol string, style Style) {
	if !b.Area.ContainsPoint(x, y) {
		return
	}
	b.breakWide(x, y)
	b.cells[b.index(x, y)] = Cell{Symbol: symbol, Style: style}
}

// breakWide blanks any wide glyph that overlaps (x, y) so that overwriting
// half of it never leaves the other half behind.
func (b *Buffer) breakWide(x, y int) {
	if b.cells[b.index(x, y)].Symbol == "" {
		for px := x - 1; px >= b.Area.X; px-- {
			c := &b.cells[b.index(px, y)]
			empty := c.Symbol == ""
			c.Symbol = " "
			if !empty {
				break
			}
		}
	}
	for nx := x + 1; nx < b.Area.Right(); nx++ {
		c := &b.cells[b.index(nx, y)]
		if c.Symbol != "" {
			break
		}
		c.Symbol = " "
	}
}

// setGlyph writes a grapheme cluster of the given display width at (x, y).
// The cells it covers after the first hold an empty symbol. A glyph that
// would cross the edge of Area is replaced by blanks.
func (b *Buffer) setGlyph(x, y int, glyph string, width int, style Style) {
	if width <= 1 {
		b.Set(x, y, glyph, style)
		return
	}
	if !b.Area.ContainsPoint(x, y) || !b.Area.ContainsPoint(x+width-1, y) {
		for i := range width {
			b.Set(x+i, y, " ", style)
		}
		return
	}
	for i := range width {
		b.breakWide(x+i, y)
	}
	b.cells[b.index(x, y)] = Cell{Symbol: glyph, Style: style}
	for i := 1; i < width; i++ {
		b.cells[b.index(x+i, y)] = Cell{Style: style}
	}
}

// SetString writes s starting at (x, y), one grapheme per cell or two for
// wide ones, and returns the column after the last one written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, math.MaxInt, s, style)
}

// SetStringClipped is SetString that stops before column right.
func (b *Buffer) SetStringClipped(x, y, right int, s string, style Style) int {
	state := -1
	for s != "" {
		var glyph string
		var width int
		glyph, s, width, state = ansi.FirstGraphemeCluster(s, state)
		if width == 0 {
			continue
		}
		if x+width > right {
			break
		}
		b.setGlyph(x, y, glyph, width, style)
		x += width
	}
	return x
}

// PatchStyle applies the set fields of patch to every cell in area.
func (b *Buffer) PatchStyle(area Rect, patch Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if !b.Area.ContainsPoint(x, y) {
				continue
			}
			c := &b.cells[b.index(x, y)]
			if patch.Fg != "" {
				c.Style.Fg = patch.Fg
			}
			if patch.Bg != "" {
				c.Style.Bg = patch.Bg
			}
			c.Style.Bold = c.Style.Bold || patch.Bold
			c.Style.Reverse = c.Style.Reverse || patch.Reverse
		}
	}
}

// Row returns the symbols of row y without styling.
func (b *Buffer) Row(y int) string {
	if y < b.Area.Y || y >= b.Area.Bottom() {
		return ""
	}
	var sb strings.Builder
	for x := b.Area.X; x < b.Area.Right(); x++ {
		sb.WriteString(b.cells[b.index(x, y)].Symbol)
	}
	return sb.String()
}

// String renders the buffer row by row, styling each run of equal cells
// through lipgloss.
func (b *Buffer) String() string {
	if b.Area.Empty() {
		return ""
	}

	var sb strings.Builder
	var run strings.Builder
	for y := b.Area.Y; y < b.Area.Bottom(); y++ {
		if y > b.Area.Y {
			sb.WriteByte('\n')
		}
		cur := b.cells[b.index(b.Area.X, y)].Style
		for x := b.Area.X; x < b.Area.Right(); x++ {
			c := b.cells[b.index(x, y)]
			if c.Style != cur {
				flushRun(&sb, &run, cur)
				cur = c.Style
			}
			run.WriteString(c.Symbol)
		}
		flushRun(&sb, &run, cur)
	}
	return sb.String()
}

func flushRun(sb, run *strings.Builder, style Style) {
	if run.Len() == 0 {
		return
	}
	if style == (Style{}) {
		sb.WriteString(run.String())
	} else {
		sb.WriteString(style.lipgloss().Render(run.String()))
	}
	run.Reset()
}
