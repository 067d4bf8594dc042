package live

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/saherflow/flowportal/internal/landing"
	"github.com/saherflow/flowportal/internal/slideshow"
)

// ErrUnmounted is returned by Send once the mount's loop has exited.
var ErrUnmounted = errors.New("live: mount is not running")

// Command types accepted from the page.
const (
	CommandSelect     = "select"
	CommandToggle     = "toggle"
	CommandImageError = "image_error"
)

// Command is one user action queued onto a mount.
type Command struct {
	Type  string `json:"type"`
	Index *int   `json:"index,omitempty"`
}

// Sink receives everything a mount emits. Calls come only from the mount's
// loop goroutine.
type Sink interface {
	State(v landing.View) error
	Error(message string) error
}

// Mount is one live page view. Its Run loop is the single dispatch queue:
// rotation ticks and user commands are applied there one at a time.
type Mount struct {
	ID string

	state    *State
	rotation *slideshow.Rotation
	sink     Sink

	commands chan Command
	done     chan struct{}
}

// NewMount creates a mount with fresh state. The rotation is not started
// until Run.
func NewMount(opts Options, sink Sink) (*Mount, error) {
	state, err := NewState(opts)
	if err != nil {
		return nil, err
	}
	rotation, err := slideshow.NewRotation(opts.Clock, opts.Interval)
	if err != nil {
		return nil, err
	}
	return &Mount{
		ID:       uuid.NewString(),
		state:    state,
		rotation: rotation,
		sink:     sink,
		commands: make(chan Command),
		done:     make(chan struct{}),
	}, nil
}

// Rotation exposes the mount's timer handle.
func (m *Mount) Rotation() *slideshow.Rotation { return m.rotation }

// Done is closed when Run returns.
func (m *Mount) Done() <-chan struct{} { return m.done }

// Run starts the rotation, publishes the initial state and processes ticks
// and commands until ctx is cancelled or the sink fails. The rotation is
// stopped on every exit path. Run must be called at most once.
func (m *Mount) Run(ctx context.Context) error {
	defer close(m.done)

	if err := m.rotation.Start(); err != nil {
		return fmt.Errorf("starting rotation: %w", err)
	}
	defer m.rotation.Stop()

	if err := m.sink.State(m.state.View()); err != nil {
		return fmt.Errorf("publishing initial state: %w", err)
	}

	ticks := m.rotation.C()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticks:
			m.state.Slides.Advance()
			if err := m.sink.State(m.state.View()); err != nil {
				return fmt.Errorf("publishing state: %w", err)
			}

		case cmd := <-m.commands:
			if err := m.apply(cmd); err != nil {
				if serr := m.sink.Error(err.Error()); serr != nil {
					return fmt.Errorf("publishing error: %w", serr)
				}
				continue
			}
			if err := m.sink.State(m.state.View()); err != nil {
				return fmt.Errorf("publishing state: %w", err)
			}
		}
	}
}

// Send queues cmd on the mount's loop. It blocks until the loop accepts it,
// ctx is cancelled, or the mount has stopped.
func (m *Mount) Send(ctx context.Context, cmd Command) error {
	select {
	case m.commands <- cmd:
		return nil
	case <-m.done:
		return ErrUnmounted
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mount) apply(cmd Command) error {
	switch cmd.Type {
	case CommandSelect:
		i, err := m.index(cmd)
		if err != nil {
			return err
		}
		m.state.Slides.Select(i)

	case CommandImageError:
		i, err := m.index(cmd)
		if err != nil {
			return err
		}
		m.state.Slides.MarkFailed(i)

	case CommandToggle:
		m.state.Theme.Toggle()

	default:
		return fmt.Errorf("unknown message type: %q", cmd.Type)
	}
	return nil
}

func (m *Mount) index(cmd Command) (int, error) {
	if cmd.Index == nil {
		return 0, fmt.Errorf("%s requires an index", cmd.Type)
	}
	i := *cmd.Index
	if !m.state.Slides.Valid(i) {
		log.Printf("live: mount %s: %s index %d out of range", m.ID, cmd.Type, i)
		return 0, fmt.Errorf("slide index %d out of range", i)
	}
	return i, nil
}
