package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/sqlengine"
)

const (
	defaultMaxConnections    = int32(8)
	defaultMinConnections    = int32(2)
	defaultMaxConnLifetime   = time.Hour
	defaultMaxConnIdleTime   = time.Minute * 5
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = time.Second * 5
	defaultMaxIdleConns      = 2
)

// ErrCreatingSchemaFailed is returned when the journal table cannot be created.
var ErrCreatingSchemaFailed = errors.New("creating journal schema failed")

// CloseFunc releases the connection behind a journal.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenJournal connects the configured journal engine and makes sure its table exists.
// The memory engine needs no connection; its CloseFunc does nothing.
func OpenJournal(ctx context.Context, cfg Config, logger eventjournal.Logger) (eventjournal.Journal, CloseFunc, error) {
	options := []sqlengine.Option{sqlengine.WithTableName(cfg.JournalTable)}
	if logger != nil {
		options = append(options, sqlengine.WithLogger(logger))
	}

	var (
		journal *sqlengine.Journal
		closeDB CloseFunc
		err     error
	)

	switch cfg.JournalDriver {
	case DriverMemory:
		return memoryengine.NewJournal(), noopClose, nil

	case DriverPGX:
		journal, closeDB, err = openPGXJournal(ctx, cfg.JournalDSN, options)

	case DriverPostgres:
		journal, closeDB, err = openSQLDBJournal(ctx, cfg.JournalDSN, options)

	case DriverSQLX:
		journal, closeDB, err = openSQLXJournal(ctx, cfg.JournalDSN, options)

	case DriverSQLite:
		journal, closeDB, err = openSQLiteJournal(ctx, cfg.JournalDSN, options)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownJournalDriver, cfg.JournalDriver)
	}

	if err != nil {
		return nil, nil, err
	}

	if err := journal.CreateSchema(ctx); err != nil {
		return nil, nil, errors.Join(ErrCreatingSchemaFailed, err, closeDB())
	}

	return journal, closeDB, nil
}

// PGXPoolConfig parses dsn and applies the pool tuning of the librarian service.
func PGXPoolConfig(dsn string) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing pgx pool config failed: %w", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

func openPGXJournal(ctx context.Context, dsn string, options []sqlengine.Option) (*sqlengine.Journal, CloseFunc, error) {
	dbConfig, err := PGXPoolConfig(dsn)
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("creating pgx pool failed: %w", err)
	}

	closePool := func() error {
		pool.Close()
		return nil
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pinging database failed: %w", pingErr)
	}

	journal, err := sqlengine.NewJournalFromPGXPool(pool, options...)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return journal, closePool, nil
}

func openSQLDBJournal(ctx context.Context, dsn string, options []sqlengine.Option) (*sqlengine.Journal, CloseFunc, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database failed: %w", err)
	}

	configurePool(db)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, nil, errors.Join(fmt.Errorf("pinging database failed: %w", pingErr), db.Close())
	}

	journal, err := sqlengine.NewJournalFromSQLDB(db, options...)
	if err != nil {
		return nil, nil, errors.Join(err, db.Close())
	}

	return journal, db.Close, nil
}

func openSQLXJournal(ctx context.Context, dsn string, options []sqlengine.Option) (*sqlengine.Journal, CloseFunc, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database failed: %w", err)
	}

	configurePool(db.DB)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, nil, errors.Join(fmt.Errorf("pinging database failed: %w", pingErr), db.Close())
	}

	journal, err := sqlengine.NewJournalFromSQLX(db, options...)
	if err != nil {
		return nil, nil, errors.Join(err, db.Close())
	}

	return journal, db.Close, nil
}

func openSQLiteJournal(ctx context.Context, dsn string, options []sqlengine.Option) (*sqlengine.Journal, CloseFunc, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database failed: %w", err)
	}

	// sqlite allows one writer, and an in-memory database lives in a single connection
	db.SetMaxOpenConns(1)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, nil, errors.Join(fmt.Errorf("pinging database failed: %w", pingErr), db.Close())
	}

	journal, err := sqlengine.NewJournalFromSQLiteDB(db, options...)
	if err != nil {
		return nil, nil, errors.Join(err, db.Close())
	}

	return journal, db.Close, nil
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(int(defaultMaxConnections))
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)
}
