package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.RecordSectionView("about"))
	assert.FileExists(t, path)
}

func TestRecordAndListVisits(t *testing.T) {
	s := setupStore(t)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit("aaaa", "curl/8", "/", base))
	require.NoError(t, s.RecordVisit("bbbb", "firefox", "/privacy", base.Add(time.Hour)))

	visits, err := s.RecentVisits(10)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "bbbb", visits[0].HashedIP)
	assert.Equal(t, "/privacy", visits[0].Path)
	assert.True(t, visits[0].Timestamp.Equal(base.Add(time.Hour)))

	visits, err = s.RecentVisits(1)
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestSectionViewsAccumulate(t *testing.T) {
	s := setupStore(t)
	for _, id := range []string{"about", "projects", "about", "contact", "about", "projects"} {
		require.NoError(t, s.RecordSectionView(id))
	}

	top, err := s.TopSections()
	require.NoError(t, err)
	assert.Equal(t, []SectionCount{
		{Section: "about", Views: 3},
		{Section: "projects", Views: 2},
		{Section: "contact", Views: 1},
	}, top)
}

func TestPurgeVisitsBefore(t *testing.T) {
	s := setupStore(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit("old", "", "/", now.AddDate(-2, 0, 0)))
	require.NoError(t, s.RecordVisit("new", "", "/", now.AddDate(0, -1, 0)))

	n, err := s.PurgeVisitsBefore(now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.RecentVisits(10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}

func TestStats(t *testing.T) {
	s := setupStore(t)
	now := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit("a", "", "/", now.Add(-2*time.Hour)))
	require.NoError(t, s.RecordVisit("a", "", "/", now.Add(-3*24*time.Hour)))
	require.NoError(t, s.RecordVisit("b", "", "/", now.Add(-30*24*time.Hour)))
	require.NoError(t, s.RecordSectionView("skills"))

	stats, err := s.Stats(now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.VisitorsToday)
	assert.EqualValues(t, 2, stats.VisitorsThisWeek)
	assert.Equal(t, []SectionCount{{Section: "skills", Views: 1}}, stats.TopSections)
	assert.Len(t, stats.RecentVisitors, 3)
}
