package runs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no run has the requested id
var ErrNotFound = errors.New("run not found")

// DefaultListLimit bounds List when the caller passes a non-positive limit
const DefaultListLimit = 20

const runColumns = "id, topic, status, artifact, error_message, created_at, updated_at"

// Store keeps run records in SQLite.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open creates or connects to the run database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("ensure run db directory: %w", err)
		}
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

	store := &Store{db: db, path: path, now: time.Now}
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

// Create inserts a pending run for the topic and returns it
func (s *Store) Create(ctx context.Context, topic string) (*Run, error) {
	id := uuid.NewString()
	timestamp := s.timestamp()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, topic, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, topic, StatusPending, timestamp, timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches a run by id
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// SetStatus moves the run to a new stage
func (s *Store) SetStatus(ctx context.Context, id string, status Status) error {
	return s.update(ctx, id, "UPDATE runs SET status = ?, updated_at = ? WHERE id = ?", status, s.timestamp(), id)
}

// Complete marks the run finished with the published artifact name
func (s *Store) Complete(ctx context.Context, id, artifact string) error {
	return s.update(ctx, id,
		"UPDATE runs SET status = ?, artifact = ?, error_message = NULL, updated_at = ? WHERE id = ?",
		StatusCompleted, artifact, s.timestamp(), id)
}

// Fail marks the run failed and keeps the error message
func (s *Store) Fail(ctx context.Context, id string, runErr error) error {
	message := "unknown error"
	if runErr != nil {
		message = runErr.Error()
	}
	return s.update(ctx, id,
		"UPDATE runs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?",
		StatusFailed, message, s.timestamp(), id)
}

// List returns the most recent runs first
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY created_at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var result []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		result = append(result, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return result, nil
}

func (s *Store) update(ctx context.Context, id, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update run %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// timestampLayout is fixed width so text order in sqlite matches time order
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run        Run
		statusStr  string
		artifact   sql.NullString
		errMessage sql.NullString
		createdRaw string
		updatedRaw string
	)

	if err := scanner.Scan(&run.ID, &run.Topic, &statusStr, &artifact, &errMessage, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	status, ok := ParseStatus(statusStr)
	if !ok {
		return nil, fmt.Errorf("unknown run status %q", statusStr)
	}
	run.Status = status
	run.Artifact = artifact.String
	run.Error = errMessage.String

	var err error
	if run.CreatedAt, err = time.Parse(timestampLayout, createdRaw); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if run.UpdatedAt, err = time.Parse(timestampLayout, updatedRaw); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &run, nil
}
