package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srivisnu25/portfolio/internal/ui"
)

func TestPagesCreateDefaults(t *testing.T) {
	for _, dark := range []bool{true, false} {
		pages := NewPages(dark)
		p := pages.Create()

		assert.Equal(t, dark, p.Theme.Dark())
		assert.Equal(t, ui.HomeSection, p.Observer.Active())
		assert.False(t, p.Nav.MenuOpen())
		assert.Len(t, p.ID, 36)
	}
}

func TestPagesAreIndependent(t *testing.T) {
	pages := NewPages(true)
	a, b := pages.Create(), pages.Create()
	require.NotEqual(t, a.ID, b.ID)

	a.Theme.Toggle()
	a.Nav.ToggleMenu()
	a.Observer.Observe([]ui.Entry{{ID: "skills", Ratio: 1}})

	assert.True(t, b.Theme.Dark())
	assert.False(t, b.Nav.MenuOpen())
	assert.Equal(t, ui.HomeSection, b.Observer.Active())
}

func TestPagesReap(t *testing.T) {
	pages := NewPages(true)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	pages.now = func() time.Time { return now }

	idle := pages.Create()
	busy := pages.Create()
	connected := pages.Create()
	require.NoError(t, connected.Observer.Start(ui.NewFeed()))
	defer connected.Observer.Stop()

	now = now.Add(20 * time.Minute)
	_, ok := pages.Get(busy.ID)
	require.True(t, ok)

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, pages.Reap(30*time.Minute))

	_, ok = pages.Get(idle.ID)
	assert.False(t, ok)
	_, ok = pages.Get(busy.ID)
	assert.True(t, ok)
	_, ok = pages.Get(connected.ID)
	assert.True(t, ok, "pages with a live observer are never reaped")
}

func TestPagesRemoveStopsObserver(t *testing.T) {
	pages := NewPages(true)
	p := pages.Create()
	require.NoError(t, p.Observer.Start(ui.NewFeed()))

	assert.True(t, pages.Remove(p.ID))
	assert.False(t, p.Observer.Running())
	assert.False(t, pages.Remove(p.ID))
	assert.Zero(t, pages.Len())
}

func TestPagesClose(t *testing.T) {
	pages := NewPages(false)
	var created []*Page
	for i := 0; i < 3; i++ {
		p := pages.Create()
		require.NoError(t, p.Observer.Start(ui.NewFeed()))
		created = append(created, p)
	}

	pages.Close()
	assert.Zero(t, pages.Len())
	for _, p := range created {
		assert.False(t, p.Observer.Running())
	}
}

func TestThemeStyle(t *testing.T) {
	v := pageView{Tokens: ui.LightTokens}
	style := string(v.ThemeStyle())

	assert.Contains(t, style, "--bg:#ffffff;")
	assert.Contains(t, style, "--accent-text:#ffffff;")
}
