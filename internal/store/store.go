// Package store keeps privacy-conscious visitor analytics in sqlite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked page request. The client address is stored only as a
// salted hash.
type Visit struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionCount is how often a section became the reader's focus.
type SectionCount struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	TopSections      []SectionCount `json:"top_sections"`
	RecentVisitors   []Visit        `json:"recent_visitors"`
}

// Store wraps the sqlite handle.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory database, used by tests.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection would get its own empty memory database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);

CREATE TABLE IF NOT EXISTS section_views (
	section TEXT PRIMARY KEY,
	views INTEGER NOT NULL DEFAULT 0
);
`

// RecordVisit stores one visit at ts.
func (s *Store) RecordVisit(hashedIP, userAgent, path string, ts time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, ts.UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordSectionView bumps the focus counter for section.
func (s *Store) RecordSectionView(section string) error {
	_, err := s.db.Exec(`
		INSERT INTO section_views (section, views) VALUES (?, 1)
		ON CONFLICT(section) DO UPDATE SET views = views + 1
	`, section)
	if err != nil {
		return fmt.Errorf("recording section view: %w", err)
	}
	return nil
}

// PurgeVisitsBefore deletes visits older than cutoff and returns how many
// rows went.
func (s *Store) PurgeVisitsBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purging visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// RecentVisits returns up to limit visits, newest first.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// TopSections returns section focus counts, most viewed first.
func (s *Store) TopSections() ([]SectionCount, error) {
	rows, err := s.db.Query(`SELECT section, views FROM section_views ORDER BY views DESC, section`)
	if err != nil {
		return nil, fmt.Errorf("querying section views: %w", err)
	}
	defer rows.Close()

	var counts []SectionCount
	for rows.Next() {
		var c SectionCount
		if err := rows.Scan(&c.Section, &c.Views); err != nil {
			return nil, fmt.Errorf("scanning section views: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Stats aggregates the dashboard figures relative to now.
func (s *Store) Stats(now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dayStart}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("counting visitors: %w", err)
		}
	}

	var err error
	if stats.TopSections, err = s.TopSections(); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(50); err != nil {
		return nil, err
	}
	return stats, nil
}
