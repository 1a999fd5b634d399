// Package metrics exposes Prometheus instrumentation for the portfolio server.
package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Recorder holds the portfolio collectors registered on one registry.
type Recorder struct {
	reg            *prom.Registry
	pageSessions   prom.Gauge
	pagesCreated   prom.Counter
	pagesReaped    prom.Counter
	themeToggles   *prom.CounterVec
	sectionChanges *prom.CounterVec
	observers      prom.Gauge
	visitsTracked  *prom.CounterVec
	visitorsPurged prom.Counter
}

// NewRecorder constructs and registers the collectors. A nil registry gets a
// fresh one.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		pageSessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "page_sessions",
			Help:      "Page sessions currently held in memory",
		}),
		pagesCreated: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_sessions_created_total",
			Help:      "Page sessions created by page loads",
		}),
		pagesReaped: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_sessions_reaped_total",
			Help:      "Idle page sessions removed by the reaper",
		}),
		themeToggles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme",
		}, []string{"theme"}),
		sectionChanges: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "active_section_changes_total",
			Help:      "Active section changes by new section",
		}, []string{"section"}),
		observers: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "section_observers",
			Help:      "Section observers with a live subscription",
		}),
		visitsTracked: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "visits_tracked_total",
			Help:      "Visit tracking attempts by result",
		}, []string{"result"}),
		visitorsPurged: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "visitors_purged_total",
			Help:      "Visitor rows removed by retention cleanup",
		}),
	}
	reg.MustRegister(r.pageSessions, r.pagesCreated, r.pagesReaped, r.themeToggles,
		r.sectionChanges, r.observers, r.visitsTracked, r.visitorsPurged)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Recorder) PageCreated() { r.pagesCreated.Inc() }

func (r *Recorder) SetPageSessions(n int) { r.pageSessions.Set(float64(n)) }

func (r *Recorder) PagesReaped(n int) { r.pagesReaped.Add(float64(n)) }

func (r *Recorder) ThemeToggled(dark bool) {
	theme := "light"
	if dark {
		theme = "dark"
	}
	r.themeToggles.WithLabelValues(theme).Inc()
}

func (r *Recorder) SectionChanged(section string) {
	r.sectionChanges.WithLabelValues(section).Inc()
}

func (r *Recorder) ObserverStarted() { r.observers.Inc() }

func (r *Recorder) ObserverStopped() { r.observers.Dec() }

func (r *Recorder) VisitTracked(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.visitsTracked.WithLabelValues(result).Inc()
}

func (r *Recorder) VisitorsPurged(n int64) { r.visitorsPurged.Add(float64(n)) }
