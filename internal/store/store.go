package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/Rhushya/Kloudmate/internal/errors"
	"github.com/Rhushya/Kloudmate/internal/logger"
	"github.com/Rhushya/Kloudmate/internal/metrics"
)

const defaultDirPerm = 0o755

// InsertOutcome tells a writer what happened to its sample.
type InsertOutcome int

const (
	// Inserted means the sample was appended.
	Inserted InsertOutcome = iota
	// Duplicate means a sample with the same (timestamp, hostname) was
	// already stored and the insert was skipped. Not an error.
	Duplicate
)

// ResultSet is a fully materialized, ordered query result. Values are the
// driver's loosely typed scalars (string, int64, float64, nil).
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Store persists metric samples in a single SQLite file. Every operation
// opens its own connection and closes it before returning, so a handle is
// never held across a slow collaborator call and the sampler's writes
// interleave safely with assistant reads on the same file.
type Store struct {
	path string
}

// New validates the database path and ensures its directory exists. The
// file itself is created lazily by the first write.
func New(dbPath string) (*Store, error) {
	errFactory := errors.New()

	if dbPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, errFactory.WithData(ErrStorageInit, struct {
				Phase string
				Path  string
				Error string
			}{
				Phase: "create_directory",
				Path:  dbPath,
				Error: err.Error(),
			})
		}
	}

	return &Store{path: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) openWriter() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_journal=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.New().Wrap(ErrStorageAccess, err)
	}
	db.SetMaxOpenConns(1) // SQLite single-writer
	return db, nil
}

func (s *Store) openReader() (*sql.DB, error) {
	// mode=ro plus query_only keeps generated SQL from mutating the
	// store, whatever statement the completion service produced.
	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro&_query_only=1&_busy_timeout=5000")
	if err != nil {
		return nil, errors.New().Wrap(ErrStorageAccess, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema idempotently creates the metrics table. Safe to call from
// concurrent processes; an existing table is not an error.
func (s *Store) EnsureSchema(ctx context.Context) error {
	errFactory := errors.New()

	db, err := s.openWriter()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	logger.Debug().Str("table", TableName).Msg("Schema ensured")
	return nil
}

// Insert appends one sample. A second sample for the same (timestamp,
// hostname) yields the Duplicate outcome with a nil error; every other
// failure is a store error.
func (s *Store) Insert(ctx context.Context, sample metrics.Sample) (InsertOutcome, error) {
	errFactory := errors.New()

	if err := sample.Validate(); err != nil {
		return Inserted, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	db, err := s.openWriter()
	if err != nil {
		return Inserted, err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, insertSampleSQL,
		sample.Timestamp.UTC().Format(TimestampLayout),
		sample.Hostname,
		sample.CPUUsage,
		sample.MemoryUsage,
		sample.DiskUsage,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Duplicate, nil
		}
		return Inserted, errFactory.Wrap(ErrStorageAccess, err)
	}

	return Inserted, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// Query runs one read statement on a read-only connection and returns the
// whole result set, or an execution error. A failed statement never yields
// partial rows.
func (s *Store) Query(ctx context.Context, sqlText string) (*ResultSet, error) {
	errFactory := errors.New()

	db, err := s.openReader()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// A missing or unreadable database file is a store failure, not a
	// failure of the caller's statement.
	if err := db.PingContext(ctx); err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, errFactory.Wrap(ErrQueryExecution, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errFactory.Wrap(ErrQueryExecution, err)
	}

	result := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errFactory.Wrap(ErrQueryExecution, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrQueryExecution, err)
	}

	return result, nil
}
