package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/terassyi/kesu/internal/files"
)

const progressThrottleInterval = 100 * time.Millisecond

// sender abstracts tea.Program.Send for testing.
type sender interface {
	Send(msg tea.Msg)
}

// ScanReporter bridges scanner progress to Bubble Tea,
// throttling progress updates to reduce UI update frequency.
type ScanReporter struct {
	target       sender
	mu           sync.Mutex
	lastProgress time.Time
	now          func() time.Time
}

// NewScanReporter creates a reporter that forwards scan progress to the given sender.
func NewScanReporter(target sender) *ScanReporter {
	return &ScanReporter{
		target: target,
		now:    time.Now,
	}
}

// Progress reports the running entry count. Calls closer together than
// progressThrottleInterval are dropped. Safe for concurrent use.
func (r *ScanReporter) Progress(scanned int64) {
	r.mu.Lock()
	now := r.now()
	if !r.lastProgress.IsZero() && now.Sub(r.lastProgress) < progressThrottleInterval {
		r.mu.Unlock()
		return
	}
	r.lastProgress = now
	r.mu.Unlock()

	r.target.Send(scanProgressMsg{scanned: scanned})
}

// Done sends a scanDoneMsg to signal completion.
func (r *ScanReporter) Done(root *files.Folder, err error) {
	r.target.Send(scanDoneMsg{root: root, err: err})
}
