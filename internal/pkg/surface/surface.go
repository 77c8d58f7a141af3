// Package surface tracks the canvas slots an embedding client has mounted,
// together with their measured boxes and visibility. It is the engine-side
// stand-in for the client's live layout: the renderer measures slots here and
// observers watch it for resize and visibility transitions.
package surface

import (
	"sync"
)

type EventKind int

const (
	// EventResize fires when a slot is mounted or its measured box changes.
	EventResize EventKind = iota

	// EventVisible fires when a slot transitions from hidden to visible.
	EventVisible
)

type Event struct {
	Kind EventKind
	Slot string
}

// Box is a slot's measured content box in CSS pixels.
type Box struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sized reports whether the box is usable for chart construction.
func (b Box) Sized() bool {
	return b.Width > 0 && b.Height > 0
}

type slot struct {
	box     Box
	visible bool
}

// Registry is the mutable canvas-slot table for one view. All methods are
// safe for concurrent use; after Close the registry ignores mutations and
// emits no further events.
type Registry struct {
	mu     sync.Mutex
	slots  map[string]*slot
	events chan Event
	closed bool
}

func NewRegistry() *Registry {
	return &Registry{
		slots:  make(map[string]*slot),
		events: make(chan Event, 16),
	}
}

// Mount registers a slot with its initial measured box.
func (r *Registry) Mount(name string, width, height int, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.slots[name] = &slot{box: Box{Width: width, Height: height}, visible: visible}
	r.emit(Event{Kind: EventResize, Slot: name})
}

// Resize updates a mounted slot's measured box. Unknown slots are ignored.
func (r *Registry) Resize(name string, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	s, ok := r.slots[name]
	if !ok {
		return
	}
	s.box = Box{Width: width, Height: height}
	r.emit(Event{Kind: EventResize, Slot: name})
}

// SetVisibility flips a slot's visibility; a hidden-to-visible transition
// emits an EventVisible.
func (r *Registry) SetVisibility(name string, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	s, ok := r.slots[name]
	if !ok {
		return
	}
	wasVisible := s.visible
	s.visible = visible
	if visible && !wasVisible {
		r.emit(Event{Kind: EventVisible, Slot: name})
	}
}

// Unmount removes a slot.
func (r *Registry) Unmount(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, name)
}

// Measure returns a slot's current box and whether the slot is mounted at
// all. Hidden slots measure zero, the same way a hidden element has no
// layout.
func (r *Registry) Measure(name string) (Box, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[name]
	if !ok {
		return Box{}, false
	}
	if !s.visible {
		return Box{}, true
	}
	return s.box, true
}

// ApplyFallback sets a fallback inline size on a mounted, zero-sized slot and
// returns the re-measured box. A slot that is already sized is left alone; a
// hidden slot stays unmeasurable, since no inline size gives layout to an
// element that is not displayed.
func (r *Registry) ApplyFallback(name string, width, height int) (Box, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[name]
	if !ok {
		return Box{}, false
	}
	if !s.visible {
		return Box{}, true
	}
	if !s.box.Sized() {
		s.box = Box{Width: width, Height: height}
	}
	return s.box, true
}

// Mounted reports whether any slot of the given names is currently mounted.
func (r *Registry) Mounted(names ...string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if _, ok := r.slots[name]; ok {
			return true
		}
	}
	return false
}

// Events exposes the observer channel. Events are dropped rather than
// blocking when the consumer lags; the scheduler coalesces requests anyway.
func (r *Registry) Events() <-chan Event {
	return r.events
}

// Close disconnects observers. Safe to call multiple times.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.events)
}

// emit must be called with mu held.
func (r *Registry) emit(ev Event) {
	select {
	case r.events <- ev:
	default:
	}
}
