package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/terassyi/kesu/internal/files"
)

const (
	dialogMaxWidth  = 150
	dialogMinRegion = 50
	dialogHeight    = 10
	// horizontal space reserved for the border and one blank column per side
	dialogPadding = 4
	// rows between the centre line and the question / confirmation lines
	dialogLineOffset = 3

	fileQuestion        = "Delete this file?"
	fileQuestionShort   = "Delete?"
	folderQuestionShort = "Delete folder?"
	confirmLine         = "(y/n)"

	// narrowest usable width that still gets the short file question
	fileQuestionMinWidth = 3
)

var (
	// ErrRegionTooSmall is returned when the dialog does not fit the region.
	ErrRegionTooSmall = errors.New("region too small for dialog")
	// ErrTextTooWide is returned when no question variant fits the dialog.
	ErrTextTooWide = errors.New("dialog text does not fit")
)

var (
	dialogColor     = lipgloss.Color("1")  // red
	dialogTextColor = lipgloss.Color("15") // white

	dialogBorderStyle = Style{Fg: dialogTextColor, Bg: dialogColor}
	dialogFillStyle   = Style{Fg: dialogColor, Bg: dialogColor}
	dialogTextStyle   = Style{Fg: dialogTextColor, Bg: dialogColor, Bold: true}
)

// MessageBox is the modal asking whether an entry should be deleted.
type MessageBox struct {
	target      files.FileOrFolder
	currentPath string
}

// NewMessageBox creates a dialog for target, which lives in currentPath.
func NewMessageBox(target files.FileOrFolder, currentPath string) *MessageBox {
	return &MessageBox{
		target:      target,
		currentPath: currentPath,
	}
}

// dialogRect returns the box for area. The border is drawn on the box's
// first and last-plus-one rows and columns.
func dialogRect(area Rect) (Rect, error) {
	var width int
	switch {
	case area.Width > dialogMaxWidth:
		width = dialogMaxWidth
	case area.Width > dialogMinRegion:
		width = area.Width / 2
	default:
		return Rect{}, ErrRegionTooSmall
	}

	box := Rect{
		X:      (area.X+area.Width)/2 - width/2,
		Y:      (area.Y+area.Height)/2 - dialogHeight/2,
		Width:  width,
		Height: dialogHeight,
	}
	outline := Rect{X: box.X, Y: box.Y, Width: box.Width + 1, Height: box.Height + 1}
	if !area.Contains(outline) {
		return Rect{}, ErrRegionTooSmall
	}
	return box, nil
}

// CanShowDialog reports whether a MessageBox can be drawn in area.
func CanShowDialog(area Rect) bool {
	_, err := dialogRect(area)
	return err == nil
}

// Draw paints the dialog centred in area.
func (m *MessageBox) Draw(area Rect, buf *Buffer) error {
	box, err := dialogRect(area)
	if err != nil {
		return err
	}

	usable := box.Width - dialogPadding
	question, err := m.question(usable)
	if err != nil {
		return err
	}
	name := m.nameLine(usable)

	x1, y1 := box.X, box.Y
	x2, y2 := box.Right(), box.Bottom()
	drawRect(buf, x1, y1, x2, y2, dialogBorderStyle)
	fillRect(buf, x1, y1, x2, y2, " ", dialogFillStyle)

	center := box.Y + box.Height/2
	m.drawCentered(buf, box, center-dialogLineOffset, question)
	m.drawCentered(buf, box, center, name)
	m.drawCentered(buf, box, center+dialogLineOffset, confirmLine)
	return nil
}

func (m *MessageBox) question(usable int) (string, error) {
	switch t := m.target.(type) {
	case *files.Folder:
		long := fmt.Sprintf("Delete folder with %d children?", t.NumDescendants)
		switch {
		case usable >= ansi.StringWidth(long):
			return long, nil
		case usable >= ansi.StringWidth(folderQuestionShort):
			return folderQuestionShort, nil
		}
	default:
		switch {
		case usable >= ansi.StringWidth(fileQuestion):
			return fileQuestion, nil
		case usable >= fileQuestionMinWidth:
			return fileQuestionShort, nil
		}
	}
	return "", ErrTextTooWide
}

func (m *MessageBox) nameLine(usable int) string {
	full := filepath.Join(m.currentPath, m.target.Name())
	if usable > ansi.StringWidth(full) {
		return full
	}
	return truncateMiddle(m.target.Name(), usable)
}

// textColumn returns where a line n columns wide starts so that it is centred
// in box, rounding towards the right.
func textColumn(box Rect, n int) int {
	return (box.Width-n+1)/2 + box.X
}

func (m *MessageBox) drawCentered(buf *Buffer, box Rect, y int, text string) {
	x := textColumn(box, ansi.StringWidth(text))
	buf.SetString(x, y, text, dialogTextStyle)
}
