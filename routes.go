package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Srivisnu25/portfolio/internal/metrics"
	"github.com/Srivisnu25/portfolio/internal/store"
	"github.com/Srivisnu25/portfolio/internal/ui"
)

// Server wires page sessions, analytics and metrics into the gin router.
type Server struct {
	cfg     Config
	pages   *Pages
	store   *store.Store
	metrics *metrics.Recorder
	admin   *Admin
	privacy template.HTML
}

func NewServer(cfg Config, st *store.Store, rec *metrics.Recorder) (*Server, error) {
	privacy, err := renderMarkdown(privacyNotice)
	if err != nil {
		return nil, fmt.Errorf("rendering privacy notice: %w", err)
	}
	return &Server{
		cfg:     cfg,
		pages:   NewPages(cfg.DarkDefault),
		store:   st,
		metrics: rec,
		admin:   NewAdmin(cfg, st, rec),
		privacy: privacy,
	}, nil
}

// pageView is everything the page templates read. Theme tokens and the
// active section come from the page's own state cells.
type pageView struct {
	PageID         string
	Dark           bool
	Tokens         ui.Tokens
	Links          []ui.NavLink
	MenuOpen       bool
	Profile        Profile
	Stats          []Stat
	Facts          []Fact
	HardSkills     []SkillGroup
	SoftSkills     []SoftSkill
	Projects       []Project
	Certifications []Certification
	Contacts       []Contact
}

// ThemeStyle exposes the tokens as CSS custom properties for the app root.
func (v pageView) ThemeStyle() template.CSS {
	t := v.Tokens
	var b strings.Builder
	for _, kv := range [][2]string{
		{"--bg", t.Background},
		{"--surface", t.Surface},
		{"--text", t.Text},
		{"--muted", t.Muted},
		{"--border", t.Border},
		{"--accent", t.Accent},
		{"--accent-text", t.AccentText},
	} {
		fmt.Fprintf(&b, "%s:%s;", kv[0], kv[1])
	}
	return template.CSS(b.String())
}

func (s *Server) view(p *Page) pageView {
	return pageView{
		PageID:         p.ID,
		Dark:           p.Theme.Dark(),
		Tokens:         p.Theme.Tokens(),
		Links:          p.Nav.Links(p.Observer.Active()),
		MenuOpen:       p.Nav.MenuOpen(),
		Profile:        profile,
		Stats:          stats,
		Facts:          facts,
		HardSkills:     hardSkills,
		SoftSkills:     softSkills,
		Projects:       projects,
		Certifications: certifications,
		Contacts:       contacts,
	}
}

// Router builds the gin engine. Templates are loaded from templates/.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(s.admin.trackingMiddleware())

	r.GET("/", s.handleIndex)

	page := r.Group("/page/:id")
	page.POST("/theme", s.handleTheme)
	page.POST("/menu", s.handleMenu)
	page.POST("/nav/:section", s.handleNav)
	page.POST("/close", s.handleClose)
	page.GET("/observe", s.handleObserve)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
			"body":  s.privacy,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pages": s.pages.Len()})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.admin.setupRoutes(r)
	return r
}

// Home page: every load starts a new page session in the default state.
func (s *Server) handleIndex(c *gin.Context) {
	p := s.pages.Create()
	s.metrics.PageCreated()
	s.metrics.SetPageSessions(s.pages.Len())

	c.HTML(http.StatusOK, "index.html", s.view(p))
}

// lookupPage resolves :id or answers with the expired fragment.
func (s *Server) lookupPage(c *gin.Context) (*Page, bool) {
	p, ok := s.pages.Get(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "page-expired", gin.H{})
		return nil, false
	}
	return p, true
}

// Theme toggle re-renders the whole app subtree with the other token set.
func (s *Server) handleTheme(c *gin.Context) {
	p, ok := s.lookupPage(c)
	if !ok {
		return
	}
	dark := p.Theme.Toggle()
	s.metrics.ThemeToggled(dark)
	slog.Debug("theme toggled", "page", p.ID, "dark", dark)

	c.HTML(http.StatusOK, "app", s.view(p))
}

// Disclosure menu toggle on narrow viewports.
func (s *Server) handleMenu(c *gin.Context) {
	p, ok := s.lookupPage(c)
	if !ok {
		return
	}
	p.Nav.ToggleMenu()
	c.HTML(http.StatusOK, "nav", s.view(p))
}

// A link in the disclosure menu was followed; the menu closes.
func (s *Server) handleNav(c *gin.Context) {
	p, ok := s.lookupPage(c)
	if !ok {
		return
	}
	if !p.Nav.Activate(c.Param("section")) {
		c.HTML(http.StatusNotFound, "nav", s.view(p))
		return
	}
	c.HTML(http.StatusOK, "nav", s.view(p))
}

// Page teardown, sent by the browser when the page goes away.
func (s *Server) handleClose(c *gin.Context) {
	if s.pages.Remove(c.Param("id")) {
		s.metrics.SetPageSessions(s.pages.Len())
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) reapPages() {
	n := s.pages.Reap(s.cfg.PageIdleTTL)
	if n > 0 {
		slog.Info("reaped idle page sessions", "count", n)
		s.metrics.PagesReaped(n)
	}
	s.metrics.SetPageSessions(s.pages.Len())
}

// Close releases every page observer.
func (s *Server) Close() {
	s.pages.Close()
}
