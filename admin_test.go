package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srivisnu25/portfolio/internal/store"
)

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func adminCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("admin cookie not set")
	return nil
}

func TestAdminRequiresLogin(t *testing.T) {
	_, r := setupServer(t)

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/api/stats", "/admin/export/stats"} {
		rec := do(r, http.MethodGet, path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}
}

func TestAdminLogin(t *testing.T) {
	_, r := setupServer(t)

	rec := login(t, r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = login(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	cookie := adminCookieFrom(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sections read")
}

func TestAdminStatsAPI(t *testing.T) {
	srv, r := setupServer(t)
	now := time.Now()
	require.NoError(t, srv.store.RecordVisit("abc", "test", "/", now))
	require.NoError(t, srv.store.RecordSectionView("projects"))

	cookie := adminCookieFrom(t, login(t, r, "admin", "s3cret"))
	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.Equal(t, []store.SectionCount{{Section: "projects", Views: 1}}, stats.TopSections)
}

func TestAdminLoginDisabledWithoutPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := NewAdmin(Config{AdminUsername: "admin"}, nil, nil)
	assert.False(t, a.checkCredentials("admin", ""))
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	srv, _ := setupServer(t)
	a := srv.admin

	h := a.hashIP("203.0.113.9")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.hashIP("203.0.113.9"))
	assert.NotEqual(t, h, a.hashIP("203.0.113.10"))
	assert.NotContains(t, h, "203")
}

func TestVisitTracking(t *testing.T) {
	srv, r := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	do(r, http.MethodGet, "/privacy")
	do(r, http.MethodGet, "/healthz")
	do(r, http.MethodGet, "/")

	assert.Eventually(t, func() bool {
		visits, err := srv.store.RecentVisits(10)
		return err == nil && len(visits) == 1 && visits[0].Path == "/"
	}, 2*time.Second, 10*time.Millisecond)

	// Give any stray goroutine a moment, then make sure DNT was honoured.
	time.Sleep(50 * time.Millisecond)
	visits, err := srv.store.RecentVisits(10)
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestPurgeExpired(t *testing.T) {
	srv, _ := setupServer(t)
	a := srv.admin
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	require.NoError(t, srv.store.RecordVisit("old", "", "/", now.AddDate(-2, 0, 0)))
	require.NoError(t, srv.store.RecordVisit("new", "", "/", now.AddDate(0, 0, -1)))

	a.PurgeExpired()

	visits, err := srv.store.RecentVisits(10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}
