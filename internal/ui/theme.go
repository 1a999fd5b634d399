package ui

import "sync"

// Tokens is one of the two fixed style-token sets. Templates read every
// colour from here, so a toggle restyles the whole tree on the next render.
type Tokens struct {
	Name       string
	Background string
	Surface    string
	Text       string
	Muted      string
	Border     string
	Accent     string
	AccentText string
}

var (
	DarkTokens = Tokens{
		Name:       "dark",
		Background: "#000000",
		Surface:    "rgba(255,255,255,0.05)",
		Text:       "#ffffff",
		Muted:      "rgba(255,255,255,0.6)",
		Border:     "rgba(255,255,255,0.1)",
		Accent:     "#ffffff",
		AccentText: "#000000",
	}
	LightTokens = Tokens{
		Name:       "light",
		Background: "#ffffff",
		Surface:    "rgba(0,0,0,0.04)",
		Text:       "#000000",
		Muted:      "rgba(0,0,0,0.6)",
		Border:     "rgba(0,0,0,0.12)",
		Accent:     "#000000",
		AccentText: "#ffffff",
	}
)

// ThemeController owns the dark/light flag of one page.
type ThemeController struct {
	mu   sync.RWMutex
	dark bool
}

func NewThemeController(dark bool) *ThemeController {
	return &ThemeController{dark: dark}
}

// Dark reports whether the dark token set is selected.
func (t *ThemeController) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Toggle flips the flag and returns the new value.
func (t *ThemeController) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}

// Tokens returns the token set for the current flag.
func (t *ThemeController) Tokens() Tokens {
	if t.Dark() {
		return DarkTokens
	}
	return LightTokens
}
