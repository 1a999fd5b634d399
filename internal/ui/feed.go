package ui

import (
	"errors"
	"sync"
)

var (
	ErrFeedSubscribed = errors.New("feed already has a subscriber")
	ErrFeedClosed     = errors.New("feed is closed")
)

// Feed is a Source whose observations are pushed by the caller. Transports
// that receive intersection entries themselves use one Feed per mount.
type Feed struct {
	mu         sync.RWMutex
	ch         chan []Event
	quit       chan struct{}
	quitOnce   sync.Once
	regions    []Section
	threshold  float64
	subscribed bool
	closed     bool
}

func NewFeed() *Feed {
	return &Feed{
		ch:   make(chan []Event),
		quit: make(chan struct{}),
	}
}

// Subscribe implements Source. A Feed serves a single subscription.
func (f *Feed) Subscribe(regions []Section, threshold float64) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrFeedClosed
	}
	if f.subscribed {
		return nil, ErrFeedSubscribed
	}
	f.subscribed = true
	f.regions = regions
	f.threshold = threshold
	return f, nil
}

// Push delivers entries to the subscriber, blocking until it is received.
// It returns false once the feed is closed or before anyone subscribed.
func (f *Feed) Push(entries []Entry) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.subscribed || f.closed {
		return false
	}
	batch := EventsFor(f.regions, f.threshold, entries)
	if len(batch) == 0 {
		return true
	}
	select {
	case f.ch <- batch:
		return true
	case <-f.quit:
		return false
	}
}

func (f *Feed) Events() <-chan []Event {
	return f.ch
}

// Close ends the stream. Pending pushes return false.
func (f *Feed) Close() error {
	f.quitOnce.Do(func() { close(f.quit) })

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	return nil
}
