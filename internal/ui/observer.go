package ui

import (
	"errors"
	"fmt"
	"sync"
)

// VisibilityThreshold is the fraction of a section's rendered area that must
// intersect the viewport for the section to count as in view.
const VisibilityThreshold = 0.5

var ErrAlreadyObserving = errors.New("section observer already running")

// Entry is one intersection observation reported by the browser.
type Entry struct {
	ID    string  `json:"id"`
	Ratio float64 `json:"ratio"`
}

// Event is an observation after the threshold has been applied.
type Event struct {
	ID      string
	Visible bool
}

// Rect is an axis-aligned box in viewport coordinates. Browsers report the
// ratio themselves; Rect and IntersectionRatio are the geometry rule that
// ratio follows.
type Rect struct {
	Top, Left, Bottom, Right float64
}

func (r Rect) Area() float64 {
	w, h := r.Right-r.Left, r.Bottom-r.Top
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// IntersectionRatio is the share of region's area that lies inside viewport.
// A region with no area never intersects.
func IntersectionRatio(region, viewport Rect) float64 {
	area := region.Area()
	if area == 0 {
		return 0
	}
	overlap := Rect{
		Top:    max(region.Top, viewport.Top),
		Left:   max(region.Left, viewport.Left),
		Bottom: min(region.Bottom, viewport.Bottom),
		Right:  min(region.Right, viewport.Right),
	}
	return overlap.Area() / area
}

// EventsFor applies threshold to entries, dropping ids not among regions.
func EventsFor(regions []Section, threshold float64, entries []Entry) []Event {
	events := make([]Event, 0, len(entries))
	for _, e := range entries {
		if indexOf(regions, e.ID) < 0 {
			continue
		}
		events = append(events, Event{ID: e.ID, Visible: e.Ratio >= threshold})
	}
	return events
}

// Subscription is a live stream of observation batches. Close releases the
// stream; the Events channel is closed once Close returns.
type Subscription interface {
	Events() <-chan []Event
	Close() error
}

// Source hands out subscriptions over a set of page regions.
type Source interface {
	Subscribe(regions []Section, threshold float64) (Subscription, error)
}

// SectionObserver tracks which section is the reader's current focus. It is
// the only writer of the active section id.
type SectionObserver struct {
	sections []Section

	mu     sync.RWMutex
	active string

	runMu    sync.Mutex
	onChange func(id string)
	sub      Subscription
	done     chan struct{}
}

// NewSectionObserver returns an observer over sections with initial as the
// active id. An initial id that is not a section leaves nothing active.
func NewSectionObserver(sections []Section, initial string) *SectionObserver {
	if indexOf(sections, initial) < 0 {
		initial = ""
	}
	return &SectionObserver{sections: sections, active: initial}
}

// OnChange registers fn to be called with the new id after each change made
// by a running subscription. It takes effect on the next Start.
func (o *SectionObserver) OnChange(fn func(id string)) {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	o.onChange = fn
}

// Active returns the active section id, or "" when none is active.
func (o *SectionObserver) Active() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.active
}

// Observe applies raw entries using the fixed threshold.
func (o *SectionObserver) Observe(entries []Entry) (string, bool) {
	return o.Apply(EventsFor(o.sections, VisibilityThreshold, entries))
}

// Apply processes one batch. Among the sections that became visible in the
// batch the topmost one wins; a later event for the same id overrides an
// earlier one. A batch with nothing visible leaves the state as it was.
func (o *SectionObserver) Apply(batch []Event) (string, bool) {
	visible := make(map[string]bool, len(batch))
	for _, ev := range batch {
		visible[ev.ID] = ev.Visible
	}

	winner := ""
	for _, s := range o.sections {
		if visible[s.ID] {
			winner = s.ID
			break
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if winner == "" || winner == o.active {
		return o.active, false
	}
	o.active = winner
	return winner, true
}

// Running reports whether a subscription is being consumed.
func (o *SectionObserver) Running() bool {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	return o.sub != nil
}

// Start subscribes to every section on src and consumes batches until Stop.
// A consumer still draining after a Stop is waited for first, so at most one
// consumer writes the active id.
func (o *SectionObserver) Start(src Source) error {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	if o.sub != nil {
		return ErrAlreadyObserving
	}
	if o.done != nil {
		<-o.done
	}

	sub, err := src.Subscribe(o.sections, VisibilityThreshold)
	if err != nil {
		return fmt.Errorf("subscribing to sections: %w", err)
	}

	done := make(chan struct{})
	o.sub, o.done = sub, done
	go o.run(sub.Events(), o.onChange, done)
	return nil
}

func (o *SectionObserver) run(events <-chan []Event, onChange func(string), done chan struct{}) {
	defer close(done)
	for batch := range events {
		if id, changed := o.Apply(batch); changed && onChange != nil {
			onChange(id)
		}
	}
}

// Stop releases the subscription and waits for the consumer to exit. It is
// safe to call when not running, and concurrent callers all wait.
func (o *SectionObserver) Stop() {
	o.runMu.Lock()
	sub, done := o.sub, o.done
	o.sub = nil
	o.runMu.Unlock()

	if sub != nil {
		_ = sub.Close()
	}
	if done != nil {
		<-done
	}
}
