package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Srivisnu25/portfolio/internal/ui"
)

const observeWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: sameOrigin,
}

// sameOrigin accepts requests without an Origin header and those whose
// Origin host is the host that served the page.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

// observeRequest carries one batch of intersection entries from the browser.
type observeRequest struct {
	Entries []ui.Entry `json:"entries"`
}

// observeResponse is sent whenever the active section changes.
type observeResponse struct {
	Type   string `json:"type"` // "active" or "error"
	Active string `json:"active,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleObserve is the mount point of the section observer. The observer
// runs for as long as the websocket stays open.
func (s *Server) handleObserve(c *gin.Context) {
	page, ok := s.pages.Get(c.Param("id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("observe: websocket upgrade", "page", page.ID, "error", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(resp observeResponse) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(observeWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			slog.Debug("observe: websocket write", "page", page.ID, "error", err)
		}
	}

	feed := ui.NewFeed()
	page.Observer.OnChange(func(id string) {
		s.metrics.SectionChanged(id)
		go s.admin.recordSectionView(id)
		send(observeResponse{Type: "active", Active: id})
	})
	if err := page.Observer.Start(feed); err != nil {
		if errors.Is(err, ui.ErrAlreadyObserving) {
			send(observeResponse{Type: "error", Error: "page is already observed"})
		} else {
			slog.Error("observe: start", "page", page.ID, "error", err)
		}
		return
	}
	s.metrics.ObserverStarted()
	defer func() {
		page.Observer.Stop()
		s.metrics.ObserverStopped()
		s.pages.Touch(page)
	}()

	send(observeResponse{Type: "active", Active: page.Observer.Active()})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("observe: websocket read", "page", page.ID, "error", err)
			}
			return
		}

		var req observeRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			send(observeResponse{Type: "error", Error: "invalid message format"})
			continue
		}
		if !feed.Push(req.Entries) {
			// The page was torn down from elsewhere.
			return
		}
	}
}
