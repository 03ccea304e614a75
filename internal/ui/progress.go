package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/terassyi/kesu/internal/files"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressManager shows scan progress for the non-interactive report.
// On a terminal it draws a spinner with a running entry count; otherwise it
// prints a single line when the scan starts and ends.
type ProgressManager struct {
	mu       sync.Mutex
	w        io.Writer
	isTTY    bool
	progress *mpb.Progress
	bar      *mpb.Bar
}

// NewProgressManager creates a new progress manager.
func NewProgressManager(w io.Writer) *ProgressManager {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	pm := &ProgressManager{
		w:     w,
		isTTY: isTTY,
	}

	if isTTY {
		pm.progress = mpb.New(mpb.WithOutput(w), mpb.WithWidth(40))
	}

	return pm
}

// Start announces a scan of root.
func (pm *ProgressManager) Start(root string) {
	style := newReportStyle()

	if !pm.isTTY {
		fmt.Fprintf(pm.w, "Scanning %s\n", style.Path.Sprint(root))
		return
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.bar = pm.progress.New(0,
		mpb.SpinnerStyle(),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("Scanning %s ", style.Path.Sprint(root))),
		),
		mpb.AppendDecorators(
			decor.CurrentNoUnit("%d entries"),
		),
	)
}

// Progress updates the running entry count. Safe for concurrent use.
func (pm *ProgressManager) Progress(scanned int64) {
	if !pm.isTTY {
		return
	}

	pm.mu.Lock()
	bar := pm.bar
	pm.mu.Unlock()

	if bar != nil {
		bar.SetCurrent(scanned)
	}
}

// Done completes the spinner and prints the outcome.
func (pm *ProgressManager) Done(root *files.Folder, err error) {
	style := newReportStyle()

	if pm.isTTY {
		pm.mu.Lock()
		if pm.bar != nil {
			if err != nil {
				pm.bar.Abort(true)
			} else {
				pm.bar.SetTotal(-1, true)
			}
			pm.bar = nil
		}
		pm.mu.Unlock()
		pm.progress.Wait()
	}

	if err != nil {
		fmt.Fprintf(pm.w, "%s scan failed: %v\n", style.FailMark, err)
		return
	}
	fmt.Fprintf(pm.w, "%s Scanned %d entries (%s)\n",
		style.SuccessMark, root.NumDescendants, formatSize(root.Size()))
}

// PrintReport prints the top largest entries directly under root.
func PrintReport(w io.Writer, root *files.Folder, rootPath string, top int) {
	style := newReportStyle()

	fmt.Fprintln(w)
	style.Header.Fprintf(w, "%s ", rootPath)
	fmt.Fprintf(w, "(%s)\n", style.Size.Sprint(formatSize(root.Size())))

	contents := root.Contents()
	if len(contents) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}

	shown := contents
	if top > 0 && len(shown) > top {
		shown = shown[:top]
	}
	for _, entry := range shown {
		fmt.Fprintf(w, "  %s %s  %s\n",
			style.Bar.Sprint(renderSizeBar(entry.Size(), root.Size())),
			style.Size.Sprintf("%*s", sizeColumn, formatSize(entry.Size())),
			style.EntryName(entry))
	}
	if rest := len(contents) - len(shown); rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}
}
