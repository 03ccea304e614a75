package event

import (
	"errors"
	"sync"
)

// DefaultQueueSize is the buffer size used for both the event channel and
// the instruction queue.
const DefaultQueueSize = 64

// ErrQueueClosed is returned by Queue.Send after the receiver closed the queue.
var ErrQueueClosed = errors.New("instruction queue closed")

// Sink accepts instructions. Implementations must not panic when the
// receiving side is gone.
type Sink interface {
	Send(ins Instruction) error
}

// Queue is an ordered instruction channel owned by its receiver.
// The receiver calls Close when it stops reading; senders then get
// ErrQueueClosed instead of blocking or panicking.
type Queue struct {
	ch   chan Instruction
	done chan struct{}
	once sync.Once
}

// NewQueue creates a Queue buffering up to size instructions.
func NewQueue(size int) *Queue {
	if size < 0 {
		size = 0
	}
	return &Queue{
		ch:   make(chan Instruction, size),
		done: make(chan struct{}),
	}
}

// Send enqueues an instruction. It blocks while the buffer is full and the
// receiver is still attached.
func (q *Queue) Send(ins Instruction) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.ch <- ins:
		return nil
	case <-q.done:
		return ErrQueueClosed
	}
}

// Receive returns the channel the receiver reads from.
// The channel itself is never closed.
func (q *Queue) Receive() <-chan Instruction {
	return q.ch
}

// Done is closed once the receiver has detached.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Close detaches the receiver. It is safe to call more than once.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.done)
	})
}
