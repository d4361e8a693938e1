// Package store is the in-memory SQLite search index over generated videos.
//
// Nothing is written to disk: every Index lives in its own ":memory:"
// database and vanishes on Close.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abelbrown/tubeview/internal/catalog"
)

// Index answers title and channel queries. Safe for concurrent use.
type Index struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates an empty index.
func Open() (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	// Each connection to ":memory:" is a separate database; pin to one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping index: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return idx, nil
}

func (x *Index) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS videos (
		id TEXT PRIMARY KEY,
		pos INTEGER NOT NULL,
		title TEXT NOT NULL,
		channel_name TEXT NOT NULL,
		channel_avatar TEXT,
		thumbnail TEXT,
		views INTEGER NOT NULL,
		uploaded_ns INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		live INTEGER DEFAULT 0,
		verified INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_videos_pos ON videos(pos);
	`
	if _, err := x.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close releases the database; the index contents are gone afterwards.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.db.Close()
}

// Add indexes videos, returning how many were new. Videos already present
// (by ID) are skipped.
func (x *Index) Add(ctx context.Context, videos []catalog.Video) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO videos
			(id, pos, title, channel_name, channel_avatar, thumbnail, views, uploaded_ns, duration, live, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, v := range videos {
		pos, ok := catalog.ParseVideoID(v.ID)
		if !ok {
			return 0, fmt.Errorf("video id %q: %w", v.ID, catalog.ErrInvalidArgument)
		}
		res, err := stmt.ExecContext(ctx,
			v.ID, pos, v.Title, v.ChannelName, v.ChannelAvatar, v.Thumbnail,
			v.Views, v.Uploaded.UnixNano(), v.Duration, boolToInt(v.Live), boolToInt(v.Verified))
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", v.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// Search returns up to limit videos whose title or channel name contains
// query, case-insensitively, in catalog order. A blank query matches
// everything.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]catalog.Video, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, catalog.ErrInvalidArgument)
	}
	x.mu.RLock()
	defer x.mu.RUnlock()

	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	rows, err := x.db.QueryContext(ctx, `
		SELECT id, title, channel_name, channel_avatar, thumbnail, views, uploaded_ns, duration, live, verified
		FROM videos
		WHERE title LIKE ? ESCAPE '\' OR channel_name LIKE ? ESCAPE '\'
		ORDER BY pos
		LIMIT ?`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []catalog.Video
	for rows.Next() {
		var (
			v        catalog.Video
			uploaded int64
			live     int
			verified int
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.ChannelName, &v.ChannelAvatar, &v.Thumbnail,
			&v.Views, &uploaded, &v.Duration, &live, &verified); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		v.Uploaded = time.Unix(0, uploaded).UTC()
		v.Live = live != 0
		v.Verified = verified != 0
		out = append(out, v)
	}
	return out, rows.Err()
}

// Count returns the number of indexed videos.
func (x *Index) Count(ctx context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var n int
	err := x.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos").Scan(&n)
	return n, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
