package transcriptcache

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"ytfetch/internal/transcript"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users then clear the cache with 'ytfetch cache clear'.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const lockRetryDelay = 100 * time.Millisecond

// lockWaitTimeout bounds how long a mutation waits for the cache lock, so a
// lock file left behind by a crashed process fails fast instead of hanging.
var lockWaitTimeout = 5 * time.Second

// Entry describes one cached transcript for listing purposes.
type Entry struct {
	VideoID           string    `json:"video_id"`
	RequestedLanguage string    `json:"requested_language"`
	TrackLanguage     string    `json:"track_language"`
	SegmentCount      int       `json:"segment_count"`
	FetchedAt         time.Time `json:"fetched_at"`
}

// Store manages transcript persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: path,
		lock: flock.New(path + ".lock"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Lookup returns the cached result for (videoID, language) if present.
func (s *Store) Lookup(ctx context.Context, videoID, language string) (transcript.Result, bool, error) {
	var trackLanguage, segmentsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT track_language, segments_json FROM transcripts
         WHERE video_id = ? AND requested_language = ?`,
		videoID, language,
	).Scan(&trackLanguage, &segmentsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return transcript.Result{}, false, nil
	}
	if err != nil {
		return transcript.Result{}, false, fmt.Errorf("query cache: %w", err)
	}

	var segments []transcript.Segment
	if err := json.Unmarshal([]byte(segmentsJSON), &segments); err != nil {
		return transcript.Result{}, false, fmt.Errorf("parse cached segments: %w", err)
	}
	return transcript.Result{
		VideoID:  videoID,
		Language: trackLanguage,
		Segments: segments,
	}, true, nil
}

// Store inserts or replaces the cached transcript for the requested language.
func (s *Store) Store(ctx context.Context, language string, result transcript.Result) error {
	if strings.TrimSpace(result.VideoID) == "" {
		return errors.New("video id cannot be empty")
	}
	segmentsJSON, err := json.Marshal(result.Segments)
	if err != nil {
		return fmt.Errorf("marshal segments: %w", err)
	}

	return s.withLock(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO transcripts
             (video_id, requested_language, track_language, segments_json, fetched_at)
             VALUES (?, ?, ?, ?, ?)`,
			result.VideoID,
			language,
			result.Language,
			string(segmentsJSON),
			time.Now().UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert transcript: %w", err)
		}
		return nil
	})
}

// List returns all cache entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, requested_language, track_language, segments_json, fetched_at
         FROM transcripts ORDER BY fetched_at DESC, video_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var segmentsJSON, fetchedAt string
		if err := rows.Scan(&entry.VideoID, &entry.RequestedLanguage, &entry.TrackLanguage, &segmentsJSON, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}
		var segments []transcript.Segment
		if err := json.Unmarshal([]byte(segmentsJSON), &segments); err == nil {
			entry.SegmentCount = len(segments)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, fetchedAt); err == nil {
			entry.FetchedAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes all entries for videoID, or only the given requested
// language when language is non-empty. Reports how many rows were removed.
func (s *Store) Remove(ctx context.Context, videoID, language string) (int64, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return 0, errors.New("video id cannot be empty")
	}

	var removed int64
	err := s.withLock(ctx, func() error {
		var res sql.Result
		var err error
		if strings.TrimSpace(language) == "" {
			res, err = s.db.ExecContext(ctx,
				`DELETE FROM transcripts WHERE video_id = ?`, videoID)
		} else {
			res, err = s.db.ExecContext(ctx,
				`DELETE FROM transcripts WHERE video_id = ? AND requested_language = ?`,
				videoID, language)
		}
		if err != nil {
			return fmt.Errorf("delete transcript: %w", err)
		}
		removed, _ = res.RowsAffected()
		return nil
	})
	return removed, err
}

// Clear removes all cached transcripts.
func (s *Store) Clear(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM transcripts`); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		return nil
	})
}

// Count returns the number of cached transcripts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM transcripts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cache: %w", err)
	}
	return count, nil
}

// withLock serializes mutations across processes via a lock file beside the
// database. The wait is bounded by lockWaitTimeout.
func (s *Store) withLock(ctx context.Context, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, lockWaitTimeout)
	defer cancel()

	locked, err := s.lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("cache lock %s held by another process", s.lock.Path())
		}
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return errors.New("cache lock unavailable")
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'ytfetch cache clear' or delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
