// Package slideshow implements the hero carousel state: a fixed slide set,
// the index of the displayed slide, and the rotation timer that advances it.
//
// A Controller is plain state with no goroutines of its own. A Rotation is an
// owned ticker handle; the mount that owns both reads Rotation.C and calls
// Controller.Advance from a single goroutine, which keeps automatic ticks and
// manual selections totally ordered.
package slideshow
