package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the value of the named series whose labels include want.
func gathered(t *testing.T, reg *prom.Registry, name string, want map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if v, ok := want[lp.GetName()]; ok && v != lp.GetValue() {
					continue series
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("series %s %v not found", name, want)
	return 0
}

func TestRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewRecorder(reg)

	r.PageCreated()
	r.PageCreated()
	r.SetPageSessions(1)
	r.ThemeToggled(false)
	r.ThemeToggled(false)
	r.ThemeToggled(true)
	r.SectionChanged("about")
	r.VisitTracked(nil)
	r.VisitTracked(errors.New("disk full"))
	r.PagesReaped(3)
	r.VisitorsPurged(4)

	assert.Equal(t, 1.0, gathered(t, reg, "portfolio_page_sessions", nil))
	assert.Equal(t, 2.0, gathered(t, reg, "portfolio_page_sessions_created_total", nil))
	assert.Equal(t, 3.0, gathered(t, reg, "portfolio_page_sessions_reaped_total", nil))
	assert.Equal(t, 2.0, gathered(t, reg, "portfolio_theme_toggles_total", map[string]string{"theme": "light"}))
	assert.Equal(t, 1.0, gathered(t, reg, "portfolio_theme_toggles_total", map[string]string{"theme": "dark"}))
	assert.Equal(t, 1.0, gathered(t, reg, "portfolio_active_section_changes_total", map[string]string{"section": "about"}))
	assert.Equal(t, 1.0, gathered(t, reg, "portfolio_visits_tracked_total", map[string]string{"result": "error"}))
	assert.Equal(t, 4.0, gathered(t, reg, "portfolio_visitors_purged_total", nil))
}

func TestRecorderHandler(t *testing.T) {
	r := NewRecorder(nil)
	r.ObserverStarted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_section_observers 1")
}
