package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/terassyi/kesu/internal/event"
	"github.com/terassyi/kesu/internal/files"
)

// Update implements tea.Model.
// It never logs through slog: the default logger may forward to this
// program, and sending from the event loop would block it.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.mode != modeScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case instructionMsg:
		return m.handleInstruction(msg.instruction)

	case instructionsClosedMsg:
		return m, nil

	case scanProgressMsg:
		m.scanned = msg.scanned
		return m, nil

	case scanDoneMsg:
		return m.handleScanDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)

	case slogMsg:
		return m.handleSlogMsg(msg)
	}

	return m, nil
}

// handleKey dispatches a key press according to the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeBrowsing:
		return m.handleBrowseKey(msg)
	case modeConfirming:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if folder := m.currentFolder(); folder != nil && m.cursor < len(folder.Contents())-1 {
			m.cursor++
		}
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.handleOpen()

	case key.Matches(msg, m.keys.Back):
		return m.handleBack()

	case key.Matches(msg, m.keys.Delete):
		return m.handleDelete()
	}
	return m, nil
}

// handleOpen enters the selected folder. Opening a file is an error pulse.
func (m *Model) handleOpen() (tea.Model, tea.Cmd) {
	folder, ok := m.selected().(*files.Folder)
	if !ok {
		return m, m.emit(event.PathError)
	}

	m.cursors = append(m.cursors, m.cursor)
	m.segments = append(m.segments, folder.Name())
	m.cursor = 0
	m.offset = 0
	m.status = ""
	return m, m.emit(event.PathChange)
}

// handleBack returns to the parent folder. Going above the root is an
// error pulse.
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	if len(m.segments) == 0 {
		return m, m.emit(event.PathError)
	}

	m.segments = m.segments[:len(m.segments)-1]
	m.cursor = m.cursors[len(m.cursors)-1]
	m.cursors = m.cursors[:len(m.cursors)-1]
	m.clampCursor()
	m.offset = 0
	m.ensureVisible()
	m.status = ""
	return m, m.emit(event.PathChange)
}

// handleDelete opens the confirmation dialog for the selected entry when the
// window is large enough to show it.
func (m *Model) handleDelete() (tea.Model, tea.Cmd) {
	target := m.selected()
	if target == nil {
		return m, nil
	}
	if !CanShowDialog(m.screen()) {
		m.status = "window too small to confirm deletion"
		return m, nil
	}

	m.mode = modeConfirming
	m.target = target
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.deleter == nil {
			m.mode = modeBrowsing
			m.target = nil
			return m, nil
		}
		m.mode = modeDeleting
		m.status = fmt.Sprintf("deleting %s", m.target.Name())
		return m, deleteEntry(m.deleter, m.rootPath, slices.Clone(m.segments), m.target.Name())

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowsing
		m.target = nil
	}
	return m, nil
}

// handleDeleteDone drops a removed entry from the tree and pulses the
// space freed counter.
func (m *Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowsing
	m.target = nil

	if msg.err != nil {
		m.status = msg.err.Error()
		return m, nil
	}

	removed, ok := m.root.Remove(msg.segments, msg.name)
	if !ok {
		m.status = fmt.Sprintf("%s is no longer in the tree", msg.name)
		return m, nil
	}
	m.spaceFreed += removed.Size()
	m.status = ""
	m.clampCursor()
	m.ensureVisible()
	return m, m.emit(event.FileDeleted)
}

// handleInstruction applies one orchestrator instruction and waits for the
// next one.
func (m *Model) handleInstruction(ins event.Instruction) (tea.Model, tea.Cmd) {
	switch ins {
	case event.SetFrameAroundCurrentPath:
		m.pending.framePath = true
	case event.RemoveFrameAroundCurrentPath:
		m.pending.framePath = false
	case event.SetPathToRed:
		m.pending.pathRed = true
	case event.ResetCurrentPathColor:
		m.pending.pathRed = false
	case event.SetFrameAroundSpaceFreed:
		m.pending.frameFreed = true
	case event.RemoveFrameAroundSpaceFreed:
		m.pending.frameFreed = false
	case event.Render:
		m.shown = m.pending
	}
	return m, waitForInstruction(m.instructions)
}

// handleScanDone switches to browsing, or quits when the scan failed.
func (m *Model) handleScanDone(msg scanDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, tea.Quit
	}
	m.root = msg.root
	m.mode = modeBrowsing
	return m, nil
}

// handleSlogMsg keeps the most recent log records for the status line.
func (m *Model) handleSlogMsg(msg slogMsg) (tea.Model, tea.Cmd) {
	m.slogLines = append(m.slogLines, slogLine(msg))
	if len(m.slogLines) > maxSlogLines {
		m.slogLines = m.slogLines[len(m.slogLines)-maxSlogLines:]
	}
	return m, nil
}

func (m *Model) clampCursor() {
	n := 0
	if folder := m.currentFolder(); folder != nil {
		n = len(folder.Contents())
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ensureVisible scrolls the listing so the cursor row is on screen.
func (m *Model) ensureVisible() {
	rows := m.listRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}
