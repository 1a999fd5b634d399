package main

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Srivisnu25/portfolio/internal/ui"
)

// Page is the UI state of one page load. A reload gets a new Page, so theme
// and navigation state never outlive it.
type Page struct {
	ID       string
	Theme    *ui.ThemeController
	Nav      *ui.NavigationBar
	Observer *ui.SectionObserver

	mu       sync.Mutex
	lastSeen time.Time
}

// Pages is the registry of live page sessions.
type Pages struct {
	darkDefault bool
	now         func() time.Time

	mu    sync.Mutex
	pages map[string]*Page
}

func NewPages(darkDefault bool) *Pages {
	return &Pages{
		darkDefault: darkDefault,
		now:         time.Now,
		pages:       make(map[string]*Page),
	}
}

// Create registers a fresh page in its initial state.
func (p *Pages) Create() *Page {
	page := &Page{
		ID:       uuid.NewString(),
		Theme:    ui.NewThemeController(p.darkDefault),
		Nav:      ui.NewNavigationBar(ui.Sections),
		Observer: ui.NewSectionObserver(ui.Sections, ui.HomeSection),
		lastSeen: p.now(),
	}

	p.mu.Lock()
	p.pages[page.ID] = page
	p.mu.Unlock()
	return page
}

// Get looks a page up and marks it as seen.
func (p *Pages) Get(id string) (*Page, bool) {
	p.mu.Lock()
	page, ok := p.pages[id]
	p.mu.Unlock()
	if !ok {
		return nil, false
	}

	p.Touch(page)
	return page, true
}

// Touch marks page as seen now.
func (p *Pages) Touch(page *Page) {
	page.mu.Lock()
	page.lastSeen = p.now()
	page.mu.Unlock()
}

// Remove drops a page and releases its observer.
func (p *Pages) Remove(id string) bool {
	p.mu.Lock()
	page, ok := p.pages[id]
	delete(p.pages, id)
	p.mu.Unlock()

	if ok {
		page.Observer.Stop()
	}
	return ok
}

// Reap removes pages idle for longer than idle. Pages with a running
// observer are connected and count as active.
func (p *Pages) Reap(idle time.Duration) int {
	cutoff := p.now().Add(-idle)

	var stale []*Page
	p.mu.Lock()
	for id, page := range p.pages {
		page.mu.Lock()
		expired := page.lastSeen.Before(cutoff)
		page.mu.Unlock()
		if expired && !page.Observer.Running() {
			stale = append(stale, page)
			delete(p.pages, id)
		}
	}
	p.mu.Unlock()

	for _, page := range stale {
		page.Observer.Stop()
	}
	return len(stale)
}

func (p *Pages) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pages)
}

// Close stops every observer and empties the registry.
func (p *Pages) Close() {
	p.mu.Lock()
	pages := p.pages
	p.pages = make(map[string]*Page)
	p.mu.Unlock()

	for _, page := range pages {
		page.Observer.Stop()
	}
}
