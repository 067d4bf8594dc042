// Package theme implements the light/dark switch and the document root it
// paints.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// DarkClass is the marker applied to the document root in dark mode.
const DarkClass = "dark"

const (
	NameLight = "light"
	NameDark  = "dark"
)

// Applier receives the theme flag every time it changes.
type Applier interface {
	ApplyTheme(dark bool)
}

// ApplierFunc adapts a plain function to Applier.
type ApplierFunc func(dark bool)

// ApplyTheme calls f(dark).
func (f ApplierFunc) ApplyTheme(dark bool) { f(dark) }

// Switch owns the theme flag. It starts light on every construction and is
// never persisted.
type Switch struct {
	dark    bool
	applier Applier
}

// New creates a light Switch and applies that initial value immediately, so
// the sink never shows a stale theme.
func New(applier Applier) *Switch {
	s := &Switch{applier: applier}
	s.apply()
	return s
}

// Dark reports whether dark mode is on.
func (s *Switch) Dark() bool { return s.dark }

// Name returns "light" or "dark".
func (s *Switch) Name() string {
	if s.dark {
		return NameDark
	}
	return NameLight
}

// Toggle flips the flag, applies it, and returns the new value.
func (s *Switch) Toggle() bool {
	s.dark = !s.dark
	s.apply()
	return s.dark
}

func (s *Switch) apply() {
	if s.applier != nil {
		s.applier.ApplyTheme(s.dark)
	}
}

// Document is the root presentation attribute: the class list on the page's
// root element. Writes are last-writer-wins.
type Document struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// NewDocument returns a document root with the given classes.
func NewDocument(classes ...string) *Document {
	d := &Document{classes: make(map[string]struct{})}
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			d.classes[c] = struct{}{}
		}
	}
	return d
}

// ApplyTheme adds the dark marker when dark is true and removes it otherwise.
func (d *Document) ApplyTheme(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if dark {
		d.classes[DarkClass] = struct{}{}
	} else {
		delete(d.classes, DarkClass)
	}
}

// Has reports whether class is present on the root.
func (d *Document) Has(class string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.classes[class]
	return ok
}

// ClassAttr renders the class list as an HTML class attribute value, sorted
// for stable output.
func (d *Document) ClassAttr() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}
