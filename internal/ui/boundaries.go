package ui

import "github.com/charmbracelet/lipgloss"

var normalBorder = lipgloss.NormalBorder()

// drawSymbolWithStyle writes a single glyph.
func drawSymbolWithStyle(buf *Buffer, x, y int, symbol string, style Style) {
	buf.Set(x, y, symbol, style)
}

// drawRect draws a single-line border whose corners sit at (x1, y1) and
// (x2, y2), both inclusive.
func drawRect(buf *Buffer, x1, y1, x2, y2 int, style Style) {
	for x := x1 + 1; x < x2; x++ {
		drawSymbolWithStyle(buf, x, y1, normalBorder.Top, style)
		drawSymbolWithStyle(buf, x, y2, normalBorder.Bottom, style)
	}
	for y := y1 + 1; y < y2; y++ {
		drawSymbolWithStyle(buf, x1, y, normalBorder.Left, style)
		drawSymbolWithStyle(buf, x2, y, normalBorder.Right, style)
	}
	drawSymbolWithStyle(buf, x1, y1, normalBorder.TopLeft, style)
	drawSymbolWithStyle(buf, x2, y1, normalBorder.TopRight, style)
	drawSymbolWithStyle(buf, x1, y2, normalBorder.BottomLeft, style)
	drawSymbolWithStyle(buf, x2, y2, normalBorder.BottomRight, style)
}

// fillRect sets every cell strictly inside the corners (x1, y1) and
// (x2, y2) to symbol.
func fillRect(buf *Buffer, x1, y1, x2, y2 int, symbol string, style Style) {
	for y := y1 + 1; y < y2; y++ {
		for x := x1 + 1; x < x2; x++ {
			drawSymbolWithStyle(buf, x, y, symbol, style)
		}
	}
}
