package ui

import "sync"

// NavLink is one rendered navigation entry.
type NavLink struct {
	ID     string
	Name   string
	Href   string
	Active bool
}

// NavigationBar models the page navigation: the link list and the
// narrow-viewport disclosure menu. The open/closed state belongs to this bar
// alone.
type NavigationBar struct {
	sections []Section

	mu       sync.Mutex
	menuOpen bool
}

func NewNavigationBar(sections []Section) *NavigationBar {
	return &NavigationBar{sections: sections}
}

// Links returns one link per section in fixed order, marking the one whose id
// equals active.
func (n *NavigationBar) Links(active string) []NavLink {
	links := make([]NavLink, 0, len(n.sections))
	for _, s := range n.sections {
		links = append(links, NavLink{
			ID:     s.ID,
			Name:   s.DisplayName,
			Href:   s.Href(),
			Active: s.ID == active,
		})
	}
	return links
}

func (n *NavigationBar) MenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.menuOpen
}

// ToggleMenu flips the disclosure menu and returns whether it is now open.
func (n *NavigationBar) ToggleMenu() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// Activate records that a link was followed. The menu always closes. It
// reports whether id is one of the bar's sections.
func (n *NavigationBar) Activate(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = false
	return indexOf(n.sections, id) >= 0
}
