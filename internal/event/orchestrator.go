package event

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultDwell is how long a highlight is held before it is removed.
const DefaultDwell = 250 * time.Millisecond

// ErrEventQueueClosed is returned by Run when the event channel is closed
// while the orchestrator is still waiting for events. Producers must keep
// the channel open until AppExit has been delivered, so callers should treat
// this as fatal.
var ErrEventQueueClosed = errors.New("event queue closed before AppExit")

// script is a highlight pulse: enter is sent, the worker sleeps, exit is sent.
type script struct {
	enter []Instruction
	exit  []Instruction
}

var scripts = map[Event]script{
	PathChange: {
		enter: []Instruction{SetFrameAroundCurrentPath, Render},
		exit:  []Instruction{RemoveFrameAroundCurrentPath, Render},
	},
	PathError: {
		enter: []Instruction{SetPathToRed, SetFrameAroundCurrentPath, Render},
		exit:  []Instruction{ResetCurrentPathColor, RemoveFrameAroundCurrentPath, Render},
	},
	FileDeleted: {
		enter: []Instruction{SetFrameAroundSpaceFreed, Render},
		exit:  []Instruction{RemoveFrameAroundSpaceFreed, Render},
	},
}

// Orchestrator drains the event channel and emits instruction scripts.
// It processes one event at a time, so scripts never interleave.
type Orchestrator struct {
	events <-chan Event
	sink   Sink
	dwell  time.Duration
	logger *slog.Logger
}

// Option is a functional option for configuring an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for dropped instructions.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an Orchestrator reading from events and writing to sink.
func NewOrchestrator(events <-chan Event, sink Sink, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		events: events,
		sink:   sink,
		dwell:  DefaultDwell,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run blocks until AppExit is received (returns nil), the event channel is
// closed (returns ErrEventQueueClosed) or ctx is cancelled while waiting for
// the next event. A script that has started always runs to completion.
func (o *Orchestrator) Run(ctx context.Context) error {
	for {
		var ev Event
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok = <-o.events:
		}
		if !ok {
			return ErrEventQueueClosed
		}

		if ev == AppExit {
			o.logger.Debug("orchestrator stopped")
			return nil
		}

		s, known := scripts[ev]
		if !known {
			o.logger.Warn("ignoring unknown event", "event", int(ev))
			continue
		}
		o.play(ev, s)
	}
}

func (o *Orchestrator) play(ev Event, s script) {
	o.sendAll(ev, s.enter)
	time.Sleep(o.dwell)
	o.sendAll(ev, s.exit)
}

// sendAll is best-effort: the receiver commonly goes away during shutdown.
func (o *Orchestrator) sendAll(ev Event, instructions []Instruction) {
	for _, ins := range instructions {
		if err := o.sink.Send(ins); err != nil {
			o.logger.Debug("dropped instruction", "event", ev.String(), "instruction", ins.String(), "error", err)
		}
	}
}
