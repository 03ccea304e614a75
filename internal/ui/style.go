package ui

import (
	"github.com/fatih/color"
	"github.com/terassyi/kesu/internal/files"
)

// reportStyle holds the colours of the non-interactive report output.
type reportStyle struct {
	SuccessMark string
	FailMark    string
	WarnMark    string
	Header      *color.Color
	Path        *color.Color
	Folder      *color.Color
	Size        *color.Color
	Bar         *color.Color
	Success     *color.Color
}

func newReportStyle() *reportStyle {
	return &reportStyle{
		SuccessMark: color.New(color.FgGreen).Sprint("✓"),
		FailMark:    color.New(color.FgRed).Sprint("✗"),
		WarnMark:    color.New(color.FgYellow).Sprint("⚠"),
		Header:      color.New(color.FgCyan, color.Bold),
		Path:        color.New(color.FgCyan),
		Folder:      color.New(color.FgBlue, color.Bold),
		Size:        color.New(color.FgYellow),
		Bar:         color.New(color.FgMagenta),
		Success:     color.New(color.FgGreen, color.Bold),
	}
}

// EntryName returns the display name of an entry. Folders get a trailing
// slash and the folder color.
func (s *reportStyle) EntryName(entry files.FileOrFolder) string {
	if _, ok := entry.(*files.Folder); ok {
		return s.Folder.Sprint(entry.Name() + "/")
	}
	return entry.Name()
}
