// Package store persists experiment results in SQLite.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/fracperc/internal/monitoring"
	"github.com/katalvlaran/fracperc/montecarlo"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound indicates an unknown experiment id.
var ErrNotFound = errors.New("store: experiment not found")

// Store is a SQLite database of experiments.
type Store struct {
	*sql.DB
}

// Experiment is one stored result.
type Experiment struct {
	ID        string
	CreatedAt time.Time
	Result    montecarlo.Result
	Record    string
}

// Open opens the database at path, creating it if needed, and migrates it to
// the latest schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{DB: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrateUp() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(s.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	// m.Close would close the shared *sql.DB.
	m.Log = migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	monitoring.Logf("[migrate] "+format, v...)
}

func (migrateLogger) Verbose() bool { return false }

// InsertExperiment stores res under a new id and returns it.
func (s *Store) InsertExperiment(ctx context.Context, res montecarlo.Result) (string, error) {
	id := uuid.New().String()
	_, err := s.ExecContext(ctx, `
		INSERT INTO experiments (
			experiment_id, created_unix_nanos, survival_prob, subdivision, levels,
			runs, seed, percolating_only, mean, stderr, raw_mean, raw_stderr,
			scale, ci95, percolating_fraction, integrity_warnings, record
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UnixNano(), res.P, res.Subdivision, res.Levels,
		res.Runs, int64(res.Seed), res.PercolatingOnly, res.Mean, res.StdErr, res.RawMean, res.RawStdErr,
		res.Scale, res.CI95, res.PercolatingFraction, res.IntegrityWarnings, res.Record(),
	)
	if err != nil {
		return "", fmt.Errorf("InsertExperiment: %w", err)
	}
	return id, nil
}

const selectExperiment = `
	SELECT experiment_id, created_unix_nanos, survival_prob, subdivision, levels,
		runs, seed, percolating_only, mean, stderr, raw_mean, raw_stderr,
		scale, ci95, percolating_fraction, integrity_warnings, record
	FROM experiments`

type scanner interface {
	Scan(dest ...any) error
}

func scanExperiment(row scanner) (Experiment, error) {
	var (
		e       Experiment
		created int64
		seed    int64
		r       = &e.Result
	)
	err := row.Scan(&e.ID, &created, &r.P, &r.Subdivision, &r.Levels,
		&r.Runs, &seed, &r.PercolatingOnly, &r.Mean, &r.StdErr, &r.RawMean, &r.RawStdErr,
		&r.Scale, &r.CI95, &r.PercolatingFraction, &r.IntegrityWarnings, &e.Record)
	if err != nil {
		return Experiment{}, err
	}
	e.CreatedAt = time.Unix(0, created)
	r.Seed = uint32(seed)
	return e, nil
}

// GetExperiment returns the experiment stored under id.
func (s *Store) GetExperiment(ctx context.Context, id string) (Experiment, error) {
	row := s.QueryRowContext(ctx, selectExperiment+` WHERE experiment_id = ?`, id)
	e, err := scanExperiment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Experiment{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Experiment{}, fmt.Errorf("GetExperiment: %w", err)
	}
	return e, nil
}

// ListExperiments returns the experiments run at survival probability p,
// ordered by number of levels and then by creation time.
func (s *Store) ListExperiments(ctx context.Context, p float64) ([]Experiment, error) {
	rows, err := s.QueryContext(ctx,
		selectExperiment+` WHERE survival_prob = ? ORDER BY levels, created_unix_nanos, rowid`, p)
	if err != nil {
		return nil, fmt.Errorf("ListExperiments: %w", err)
	}
	defer rows.Close()

	var out []Experiment
	for rows.Next() {
		e, err := scanExperiment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListExperiments: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExperiments: %w", err)
	}
	return out, nil
}
