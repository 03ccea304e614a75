package ui

import (
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/kesu/internal/event"
)

// enableColorForTest forces lipgloss to emit ANSI escape sequences during tests
// (by default lipgloss detects no TTY and strips colors).
// Tests using this must not call t.Parallel().
func enableColorForTest(t *testing.T) {
	t.Helper()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func containsANSI(s string) bool {
	return ansiPattern.MatchString(s)
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0 TiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestRenderSizeBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		size   int64
		total  int64
		filled int
	}{
		{name: "empty total", size: 10, total: 0, filled: 0},
		{name: "none", size: 0, total: 100, filled: 0},
		{name: "half", size: 50, total: 100, filled: 10},
		{name: "full", size: 100, total: 100, filled: 20},
		{name: "over", size: 200, total: 100, filled: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bar := renderSizeBar(tt.size, tt.total)
			assert.Equal(t, sizeBarWidth, len([]rune(bar)))
			assert.Equal(t, tt.filled, strings.Count(bar, string(sizeBarFull)))
		})
	}
}

func TestView_Browsing(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "/data")
	assert.Contains(t, view, "photos/")
	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, "3.9 KiB")
	assert.Contains(t, view, "Space freed: 0 B")
	assert.Contains(t, view, "delete")
	assert.Len(t, strings.Split(view, "\n"), 30)
}

func TestView_TooSmall(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, WithSize(10, 5))
	assert.Contains(t, m.View(), "window too small")
}

func TestView_EmptyFolder(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	update(t, m, deleteDoneMsg{name: "photos"})
	update(t, m, deleteDoneMsg{name: "notes.txt"})
	update(t, m, deleteDoneMsg{name: "tiny"})

	view := m.View()
	assert.Contains(t, view, "(empty)")
	assert.Contains(t, view, "Space freed: 4.0 KiB")
}

func TestRender_SelectedRow(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	update(t, m, runes("j"))

	buf := m.render()
	assert.False(t, buf.Cell(1, titleHeight).Style.Reverse)
	assert.True(t, buf.Cell(1, titleHeight+1).Style.Reverse)
	assert.Contains(t, buf.Row(titleHeight+1), "notes.txt")
}

func TestRender_NarrowWindowHasNoBar(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, WithSize(40, 20))

	row := m.render().Row(titleHeight)
	assert.NotContains(t, row, string(sizeBarFull))
	assert.NotContains(t, row, string(sizeBarEmpty))
	assert.Contains(t, row, "photos/")
}

func TestRender_Highlights(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	statusTop := m.height - helpHeight - statusHeight

	buf := m.render()
	assert.Equal(t, " ", buf.Cell(0, 0).Symbol)
	assert.Equal(t, " ", buf.Cell(0, statusTop).Symbol)
	assert.Equal(t, titleStyle, buf.Cell(2, 1).Style)

	for _, ins := range []event.Instruction{
		event.SetFrameAroundCurrentPath,
		event.SetPathToRed,
		event.SetFrameAroundSpaceFreed,
		event.Render,
	} {
		update(t, m, instructionMsg{instruction: ins})
	}

	buf = m.render()
	assert.Equal(t, normalBorder.TopLeft, buf.Cell(0, 0).Symbol)
	assert.Equal(t, normalBorder.BottomRight, buf.Cell(m.width-1, titleHeight-1).Symbol)
	assert.Equal(t, titleErrorStyle, buf.Cell(2, 1).Style)
	assert.Equal(t, normalBorder.TopLeft, buf.Cell(0, statusTop).Symbol)
	assert.Equal(t, normalBorder.BottomLeft, buf.Cell(0, statusTop+statusHeight-1).Symbol)
}

func TestRender_ConfirmDialog(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	update(t, m, runes("d"))
	require.Equal(t, modeConfirming, m.mode)

	view := m.View()
	assert.Contains(t, view, "Delete folder with 2 children?")
	assert.Contains(t, view, "/data/photos")
	assert.Contains(t, view, confirmLine)
	assert.Contains(t, view, "yes")
}

func TestRender_ConfirmDialogAfterShrink(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	update(t, m, runes("d"))
	require.Equal(t, modeConfirming, m.mode)

	m.width = 40
	buf := m.render()
	assert.Contains(t, buf.Row(m.height-1), ErrRegionTooSmall.Error()[:20])
}

func TestRender_StatusShowsLatestLog(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	update(t, m, slogMsg{level: slog.LevelInfo, message: "older"})
	update(t, m, slogMsg{level: slog.LevelWarn, message: "skipping unreadable directory"})

	statusRow := m.height - helpHeight - statusHeight + 1
	row := m.render().Row(statusRow)
	assert.Contains(t, row, "WARN skipping unreadable directory")
	assert.NotContains(t, row, "older")
}

func TestRender_StatusPrefersStatusOverLog(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, WithSize(50, 30))
	update(t, m, slogMsg{level: slog.LevelWarn, message: "log line"})
	update(t, m, runes("d"))

	statusRow := m.height - helpHeight - statusHeight + 1
	row := m.render().Row(statusRow)
	assert.Contains(t, row, "window too small")
	assert.NotContains(t, row, "log line")
}

func TestSlogLevelLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "DEBUG", slogLevelLabel(slog.LevelDebug))
	assert.Equal(t, "INFO", slogLevelLabel(slog.LevelInfo))
	assert.Equal(t, "WARN", slogLevelLabel(slog.LevelWarn))
	assert.Equal(t, "ERROR", slogLevelLabel(slog.LevelError))
}

func TestView_Styled(t *testing.T) {
	enableColorForTest(t)
	m, _ := newTestModel(t)

	update(t, m, instructionMsg{instruction: event.SetPathToRed})
	update(t, m, instructionMsg{instruction: event.Render})

	view := m.View()
	assert.True(t, containsANSI(view))
	assert.Contains(t, ansiPattern.ReplaceAllString(view, ""), "/data")
}

func TestView_PlainWithoutColor(t *testing.T) {
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })

	m, _ := newTestModel(t)
	assert.False(t, containsANSI(m.View()))
}
