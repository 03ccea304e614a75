package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	sizeBarWidth = 20
	sizeBarFull  = '█'
	sizeBarEmpty = '░'

	ellipsis      = "[...]"
	shortEllipsis = "…"
)

// truncateMiddle shortens s to exactly width terminal columns by replacing
// its middle with an ellipsis. Strings that already fit are returned
// unchanged. A wide character cut in half is replaced by a space.
func truncateMiddle(s string, width int) string {
	sw := ansi.StringWidth(s)
	if sw <= width {
		return s
	}
	if width <= 0 {
		return ""
	}

	marker := ellipsis
	if width <= ansi.StringWidth(ellipsis) {
		marker = shortEllipsis
	}
	// the odd column goes to the prefix
	n := width - ansi.StringWidth(marker)
	prefixW := (n + 1) / 2
	suffixW := n / 2

	prefix := ansi.Truncate(s, prefixW, "")
	prefix += strings.Repeat(" ", prefixW-ansi.StringWidth(prefix))

	cut := sw - suffixW
	suffix := ansi.TruncateLeft(s, cut, "")
	for ansi.StringWidth(suffix) > suffixW {
		cut++
		suffix = ansi.TruncateLeft(s, cut, "")
	}
	suffix = strings.Repeat(" ", suffixW-ansi.StringWidth(suffix)) + suffix

	return prefix + marker + suffix
}

// formatSize formats bytes as human-readable size.
func formatSize(bytes int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
		tib = 1024 * gib
	)

	switch {
	case bytes >= tib:
		return fmt.Sprintf("%.1f TiB", float64(bytes)/float64(tib))
	case bytes >= gib:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/float64(gib))
	case bytes >= mib:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatSize is formatSize for callers outside the TUI.
func FormatSize(bytes int64) string {
	return formatSize(bytes)
}

// renderSizeBar renders the share of total taken by size as a Unicode bar.
func renderSizeBar(size, total int64) string {
	if total <= 0 {
		return strings.Repeat(string(sizeBarEmpty), sizeBarWidth)
	}

	ratio := float64(size) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(sizeBarWidth))
	empty := sizeBarWidth - filled

	return strings.Repeat(string(sizeBarFull), filled) + strings.Repeat(string(sizeBarEmpty), empty)
}

// padRight pads s with spaces to width columns.
func padRight(s string, width int) string {
	n := ansi.StringWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
