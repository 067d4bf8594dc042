package slideshow

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFallback is shown in place of any slide whose image fails to load.
const DefaultFallback = "https://images.pexels.com/photos/3862132/pexels-photo-3862132.jpeg?auto=compress&cs=tinysrgb&w=800"

// ErrNoSlides is returned when a controller is built from an empty slide set.
var ErrNoSlides = errors.New("slideshow: slide set is empty")

// Slide is the render-time view of one entry in the slide set.
type Slide struct {
	Index   int     `json:"index"`
	Src     string  `json:"src"`
	Active  bool    `json:"active"`
	Failed  bool    `json:"failed,omitempty"`
	Opacity float64 `json:"opacity"`
}

// Controller holds the slide set and the current index. It is not safe for
// concurrent use; the owning mount serializes every call.
type Controller struct {
	slides   []string
	failed   []bool
	fallback string
	current  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithFallback sets the image reference substituted for slides that fail to load.
func WithFallback(ref string) Option {
	return func(c *Controller) {
		if ref != "" {
			c.fallback = ref
		}
	}
}

// New creates a Controller positioned on the first slide. The slide set is
// copied and stays fixed for the controller's lifetime.
func New(slides []string, opts ...Option) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	for i, s := range slides {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("slideshow: slide %d has an empty reference", i)
		}
	}

	c := &Controller{
		slides:   append([]string(nil), slides...),
		failed:   make([]bool, len(slides)),
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Len returns the number of slides.
func (c *Controller) Len() int { return len(c.slides) }

// Current returns the index of the displayed slide.
func (c *Controller) Current() int { return c.current }

// Fallback returns the substitution reference for failed images.
func (c *Controller) Fallback() string { return c.fallback }

// Valid reports whether i addresses a slide.
func (c *Controller) Valid(i int) bool { return i >= 0 && i < len(c.slides) }

// Advance moves to the next slide, wrapping after the last one.
func (c *Controller) Advance() {
	c.current = (c.current + 1) % len(c.slides)
}

// Select jumps to slide i. The rotation schedule is left alone, so the next
// automatic tick may follow shortly after a manual jump.
//
// Select panics if i is out of range; indicator controls are generated from
// the same slide set, so a bad index is a programming error. Callers handling
// untrusted input must check Valid first.
func (c *Controller) Select(i int) {
	if !c.Valid(i) {
		panic(fmt.Sprintf("slideshow: select index %d out of range [0,%d)", i, len(c.slides)))
	}
	c.current = i
}

// MarkFailed records that slide i could not be loaded. The slide keeps its
// position but renders the fallback reference from then on. Out-of-range
// indices are ignored.
func (c *Controller) MarkFailed(i int) {
	if c.Valid(i) {
		c.failed[i] = true
	}
}

// Src returns the reference to display for slide i.
func (c *Controller) Src(i int) string {
	if c.failed[i] {
		return c.fallback
	}
	return c.slides[i]
}

// Slides returns every slide with its display state. All slides are always
// present; only the current one is opaque.
func (c *Controller) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	for i := range c.slides {
		active := i == c.current
		opacity := 0.0
		if active {
			opacity = 1
		}
		out[i] = Slide{
			Index:   i,
			Src:     c.Src(i),
			Active:  active,
			Failed:  c.failed[i],
			Opacity: opacity,
		}
	}
	return out
}
