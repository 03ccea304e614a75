package ui

import (
	"log/slog"

	"github.com/terassyi/kesu/internal/event"
	"github.com/terassyi/kesu/internal/files"
)

// instructionMsg wraps an instruction received from the orchestrator.
type instructionMsg struct {
	instruction event.Instruction
}

// instructionsClosedMsg signals that the instruction queue was closed.
type instructionsClosedMsg struct{}

// scanProgressMsg reports how many entries have been scanned so far.
type scanProgressMsg struct {
	scanned int64
}

// scanDoneMsg signals that scanning has completed.
type scanDoneMsg struct {
	root *files.Folder
	err  error
}

// deleteDoneMsg signals that an entry was removed from disk (or failed to be).
type deleteDoneMsg struct {
	segments []string
	name     string
	err      error
}

// slogMsg delivers a structured log record to the TUI model.
type slogMsg struct {
	level   slog.Level
	message string
}

// slogLine is a log record kept for display.
type slogLine slogMsg
