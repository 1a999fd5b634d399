// Package ui holds the per-page UI state of the portfolio: the theme flag,
// the active-section observer and the navigation bar model.
package ui

// Section is a named, anchorable region of the page.
type Section struct {
	ID          string
	DisplayName string
}

// Href is the in-page anchor for the section.
func (s Section) Href() string {
	return "#" + s.ID
}

// Sections is the fixed set of page regions in display and navigation order.
var Sections = []Section{
	{ID: "home", DisplayName: "Home"},
	{ID: "about", DisplayName: "About"},
	{ID: "skills", DisplayName: "Skills"},
	{ID: "projects", DisplayName: "Projects"},
	{ID: "certification", DisplayName: "Certification"},
	{ID: "contact", DisplayName: "Contact"},
}

// HomeSection is the section considered active before any observation arrives.
const HomeSection = "home"

// indexOf returns the position of id in sections, or -1.
func indexOf(sections []Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// IsSection reports whether id names one of the fixed sections.
func IsSection(id string) bool {
	return indexOf(Sections, id) >= 0
}
