package live

import (
	"fmt"
	"time"

	"k8s.io/utils/clock"

	"github.com/saherflow/flowportal/internal/landing"
	"github.com/saherflow/flowportal/internal/slideshow"
	"github.com/saherflow/flowportal/internal/theme"
)

// Options is the construction-time configuration shared by every mount.
type Options struct {
	Slides     []string
	Fallback   string
	Interval   time.Duration
	Transition time.Duration
	// Clock drives the rotation. Nil means the real clock.
	Clock clock.WithTicker
}

func (o Options) validate() error {
	if len(o.Slides) == 0 {
		return slideshow.ErrNoSlides
	}
	if o.Interval <= 0 {
		return fmt.Errorf("live: interval must be positive, got %s", o.Interval)
	}
	if o.Transition < 0 {
		return fmt.Errorf("live: transition must be non-negative, got %s", o.Transition)
	}
	return nil
}

// State is the view state of one mount: the carousel, the theme switch and
// the document root the switch paints.
type State struct {
	Slides *slideshow.Controller
	Theme  *theme.Switch
	Doc    *theme.Document

	interval   time.Duration
	transition time.Duration
}

// NewState builds fresh mount state: first slide, light theme.
func NewState(opts Options) (*State, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slides, err := slideshow.New(opts.Slides, slideshow.WithFallback(opts.Fallback))
	if err != nil {
		return nil, err
	}
	doc := theme.NewDocument()
	return &State{
		Slides:     slides,
		Theme:      theme.New(doc),
		Doc:        doc,
		interval:   opts.Interval,
		transition: opts.Transition,
	}, nil
}

// View snapshots the state for rendering.
func (s *State) View() landing.View {
	return landing.View{
		Classes:      s.Doc.ClassAttr(),
		Theme:        s.Theme.Name(),
		Current:      s.Slides.Current(),
		Slides:       s.Slides.Slides(),
		Fallback:     s.Slides.Fallback(),
		IntervalMS:   int(s.interval / time.Millisecond),
		TransitionMS: int(s.transition / time.Millisecond),
	}
}
