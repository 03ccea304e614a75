package ui

import (
	"fmt"
	"log/slog"

	"github.com/terassyi/kesu/internal/files"
)

const (
	titleHeight  = 3
	statusHeight = 3
	helpHeight   = 1

	minWidth  = 20
	minHeight = titleHeight + statusHeight + helpHeight + 1

	// windows at least this wide get a size bar in front of each entry
	barMinWidth = 60
	sizeColumn  = 10
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == modeScanning {
		return fmt.Sprintf("%s Scanning %s ... %d entries\n", m.spinner.View(), m.rootPath, m.scanned)
	}
	if m.width < minWidth || m.height < minHeight {
		return errorStyle.Render("window too small")
	}
	return m.render().String()
}

// render paints the browsing screen into a fresh buffer.
func (m *Model) render() *Buffer {
	buf := NewBuffer(m.screen())
	m.renderTitle(buf)
	m.renderEntries(buf)
	m.renderStatus(buf)
	m.renderHelp(buf)

	if m.mode == modeConfirming && m.target != nil {
		if err := NewMessageBox(m.target, m.currentPath()).Draw(m.screen(), buf); err != nil {
			// the delete trigger is gated on CanShowDialog, so this only
			// happens when the window shrank while the dialog was open
			buf.SetStringClipped(1, m.height-1, m.width, err.Error(), errorLogStyle)
		}
	}
	return buf
}

// listRows returns how many entry rows fit between the title and status blocks.
func (m *Model) listRows() int {
	return m.height - titleHeight - statusHeight - helpHeight
}

// renderTitle draws the current path, framed and coloured per the
// published highlight flags.
func (m *Model) renderTitle(buf *Buffer) {
	if m.shown.framePath {
		drawRect(buf, 0, 0, m.width-1, titleHeight-1, frameStyle)
	}

	style := titleStyle
	if m.shown.pathRed {
		style = titleErrorStyle
	}
	path := truncateMiddle(m.currentPath(), m.width-4)
	buf.SetString(2, 1, path, style)
}

// renderEntries draws the visible slice of the current folder.
func (m *Model) renderEntries(buf *Buffer) {
	top := titleHeight
	rows := m.listRows()

	folder := m.currentFolder()
	if folder == nil || len(folder.Contents()) == 0 {
		buf.SetString(2, top, "(empty)", helpStyle)
		return
	}

	contents := folder.Contents()
	end := min(m.offset+rows, len(contents))
	for i := m.offset; i < end; i++ {
		y := top + i - m.offset
		renderEntry(buf, y, m.width, contents[i], folder.Size())
		if i == m.cursor {
			buf.PatchStyle(Rect{X: 0, Y: y, Width: m.width, Height: 1}, selectedStyle)
		}
	}
}

// renderEntry draws one listing row:
// "████░░░░░░░░░░░░░░░░   12.3 MiB  name/".
func renderEntry(buf *Buffer, y, width int, entry files.FileOrFolder, total int64) {
	x := 1
	if width >= barMinWidth {
		x = buf.SetString(x, y, renderSizeBar(entry.Size(), total), barStyle)
		x++
	}
	x = buf.SetString(x, y, fmt.Sprintf("%*s", sizeColumn, formatSize(entry.Size())), sizeStyle)
	x += 2

	name := entry.Name()
	style := Style{}
	if _, ok := entry.(*files.Folder); ok {
		name += "/"
		style = folderStyle
	}
	buf.SetString(x, y, truncateMiddle(name, width-x-1), style)
}

// renderStatus draws the space freed counter with the latest status or log
// line, framed per the published highlight flags.
func (m *Model) renderStatus(buf *Buffer) {
	top := m.height - helpHeight - statusHeight
	if m.shown.frameFreed {
		drawRect(buf, 0, top, m.width-1, top+statusHeight-1, frameStyle)
	}

	y := top + 1
	right := m.width - 2
	x := buf.SetStringClipped(2, y, right, "Space freed: "+formatSize(m.spaceFreed), titleStyle)

	switch {
	case m.status != "":
		buf.SetStringClipped(x+2, y, right, m.status, warnLogStyle)
	case len(m.slogLines) > 0:
		line := m.slogLines[len(m.slogLines)-1]
		text := slogLevelLabel(line.level) + " " + line.message
		buf.SetStringClipped(x+2, y, right, text, slogLineStyle(line.level))
	}
}

// renderHelp draws the key help on the last row.
func (m *Model) renderHelp(buf *Buffer) {
	help := m.keys.browseHelp()
	if m.mode == modeConfirming {
		help = m.keys.confirmHelp()
	}
	buf.SetStringClipped(1, m.height-1, m.width, help, helpStyle)
}

// slogLevelLabel returns a short label for the log level.
func slogLevelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// slogLineStyle returns the colour for a log line of the given level.
func slogLineStyle(level slog.Level) Style {
	switch {
	case level >= slog.LevelError:
		return errorLogStyle
	case level >= slog.LevelWarn:
		return warnLogStyle
	case level >= slog.LevelInfo:
		return Style{}
	default:
		return helpStyle
	}
}
