package ui

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/terassyi/kesu/internal/event"
	"github.com/terassyi/kesu/internal/files"
)

const maxSlogLines = 3

// mode is what the model is currently doing.
type mode int

const (
	modeScanning mode = iota
	modeBrowsing
	modeConfirming
	modeDeleting
)

// highlight holds the animation flags toggled by instructions.
type highlight struct {
	framePath  bool
	pathRed    bool
	frameFreed bool
}

// InstructionSource is the receiving side of the instruction queue.
type InstructionSource interface {
	Receive() <-chan event.Instruction
	Done() <-chan struct{}
}

// Model is the Bubble Tea model for browsing a scanned tree.
type Model struct {
	rootPath string
	root     *files.Folder

	// Position
	segments []string
	cursors  []int // cursor of each parent, restored on the way back up
	cursor   int
	offset   int

	mode    mode
	target  files.FileOrFolder
	scanned int64

	// Animation state. Instructions update pending; Render publishes it.
	pending highlight
	shown   highlight

	spaceFreed int64
	status     string
	slogLines  []slogLine

	events       *eventSink
	instructions InstructionSource
	deleter      *files.Deleter

	keys    keyMap
	spinner spinner.Model

	err    error
	width  int
	height int
}

// Option is a functional option for configuring a Model.
type Option func(*Model)

// WithTree starts the model on an already scanned tree.
func WithTree(root *files.Folder) Option {
	return func(m *Model) {
		m.root = root
		m.mode = modeBrowsing
	}
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// NewModel creates a Model for rootPath. Navigation events are written to
// events; instructions are read from instructions.
func NewModel(rootPath string, events chan<- event.Event, instructions InstructionSource, deleter *files.Deleter, opts ...Option) *Model {
	m := &Model{
		rootPath:     rootPath,
		mode:         modeScanning,
		events:       newEventSink(events),
		instructions: instructions,
		deleter:      deleter,
		keys:         defaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForInstruction(m.instructions)}
	if m.mode == modeScanning {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// SpaceFreed returns the number of bytes deleted during the session.
func (m *Model) SpaceFreed() int64 {
	return m.spaceFreed
}

// currentPath returns the filesystem path of the folder being shown.
func (m *Model) currentPath() string {
	return filepath.Join(append([]string{m.rootPath}, m.segments...)...)
}

// currentFolder returns the folder being shown.
func (m *Model) currentFolder() *files.Folder {
	if m.root == nil {
		return nil
	}
	folder, ok := m.root.Folder(m.segments)
	if !ok {
		return nil
	}
	return folder
}

// selected returns the entry under the cursor.
func (m *Model) selected() files.FileOrFolder {
	folder := m.currentFolder()
	if folder == nil {
		return nil
	}
	contents := folder.Contents()
	if m.cursor < 0 || m.cursor >= len(contents) {
		return nil
	}
	return contents[m.cursor]
}

// screen returns the full window area.
func (m *Model) screen() Rect {
	return Rect{Width: m.width, Height: m.height}
}

// eventSink hands events to the orchestrator. An event equal to the one
// still waiting at the tail of the channel is dropped, so a held key
// queues at most one dwell.
type eventSink struct {
	mu   sync.Mutex
	ch   chan<- event.Event
	last event.Event
	sent bool
}

func newEventSink(ch chan<- event.Event) *eventSink {
	if ch == nil {
		return nil
	}
	return &eventSink{ch: ch}
}

func (s *eventSink) send(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// the channel is FIFO, so while it is non-empty the last send is queued
	if s.sent && s.last == e && len(s.ch) > 0 {
		return
	}
	s.ch <- e
	s.last, s.sent = e, true
}

// emit returns a command that hands e to the orchestrator.
func (m *Model) emit(e event.Event) tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		m.events.send(e)
		return nil
	}
}

// waitForInstruction blocks until the next instruction arrives. It is
// re-issued after each instruction is handled.
func waitForInstruction(src InstructionSource) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ins := <-src.Receive():
			return instructionMsg{instruction: ins}
		case <-src.Done():
			return instructionsClosedMsg{}
		}
	}
}

// deleteEntry removes an entry from disk off the UI goroutine.
func deleteEntry(d *files.Deleter, rootPath string, segments []string, name string) tea.Cmd {
	return func() tea.Msg {
		err := d.Delete(context.Background(), rootPath, segments, name)
		return deleteDoneMsg{segments: segments, name: name, err: err}
	}
}
