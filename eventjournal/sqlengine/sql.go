// Package sqlengine provides a SQL implementation of the catalog's event journal.
//
// Statements are built with goqu for the postgres and sqlite3 dialects and executed through
// one of the adapters for pgxpool.Pool, sql.DB, or sqlx.DB. The table layout is:
//
//	sequence_number  auto-incremented primary key
//	event_type       text
//	stream_id        text, indexed
//	occurred_at      timestamp
//	payload          json(b) / text
//	metadata         json(b) / text
package sqlengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/sqlengine/internal/adapters"
)

const (
	defaultTableName = "catalog_events"

	// DialectPostgres is the goqu dialect for PostgreSQL.
	DialectPostgres = "postgres"

	// DialectSQLite is the goqu dialect for SQLite.
	DialectSQLite = "sqlite3"

	colSequenceNumber = "sequence_number"
	colEventType      = "event_type"
	colStreamID       = "stream_id"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"

	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgSchemaCreated            = "journal schema ensured"
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrTable                   = "table"
	logActionQuery                 = "query"
	logActionAppend                = "append"
	logActionSchema                = "schema"

	// occurred_at is written as fixed-width UTC text; SQLite range filters compare it lexically.
	occurredAtLayout = "2006-01-02T15:04:05.000000000Z"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS %[1]s (
	sequence_number BIGSERIAL PRIMARY KEY,
	event_type TEXT NOT NULL,
	stream_id TEXT NOT NULL,
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL
)`

const sqliteSchema = `CREATE TABLE IF NOT EXISTS %[1]s (
	sequence_number INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	stream_id TEXT NOT NULL,
	occurred_at TIMESTAMP NOT NULL,
	payload TEXT NOT NULL,
	metadata TEXT NOT NULL
)`

const streamIndex = `CREATE INDEX IF NOT EXISTS %[1]s_stream_id_idx ON %[1]s (stream_id)`

// Journal is an eventjournal.Journal backed by a SQL table.
type Journal struct {
	db               adapters.DBAdapter
	dialect          string
	tableName        string
	logger           eventjournal.Logger
	contextualLogger eventjournal.ContextualLogger
}

type queryResultRow struct {
	sequenceNumber int64
	eventType      string
	streamID       string
	occurredAt     time.Time
	payload        []byte
	metadata       []byte
}

// NewJournalFromPGXPool creates a new PostgreSQL Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, eventjournal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), DialectPostgres, options...)
}

// NewJournalFromSQLDB creates a new PostgreSQL Journal using a sql.DB (lib/pq) with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, eventjournal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), DialectPostgres, options...)
}

// NewJournalFromSQLX creates a new PostgreSQL Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, eventjournal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), DialectPostgres, options...)
}

// NewJournalFromSQLiteDB creates a new SQLite Journal using a sql.DB (mattn/go-sqlite3) with optional configuration.
func NewJournalFromSQLiteDB(db *sql.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, eventjournal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), DialectSQLite, options...)
}

func newJournal(db adapters.DBAdapter, dialect string, options ...Option) (*Journal, error) {
	j := &Journal{
		db:        db,
		dialect:   dialect,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(j); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// CreateSchema creates the journal table and its stream index if they do not exist yet.
func (j *Journal) CreateSchema(ctx context.Context) error {
	table := postgresSchema
	if j.dialect == DialectSQLite {
		table = sqliteSchema
	}

	for _, statement := range []string{fmt.Sprintf(table, j.tableName), fmt.Sprintf(streamIndex, j.tableName)} {
		start := time.Now()
		_, err := j.db.Exec(ctx, statement)
		j.logQueryWithDuration(ctx, statement, logActionSchema, time.Since(start))

		if err != nil {
			j.logError(ctx, logMsgDBExecFailed, logAttrError, err.Error(), logAttrQuery, statement)
			return err
		}
	}

	j.logInfo(ctx, logMsgSchemaCreated, logAttrTable, j.tableName)

	return nil
}

// Append inserts the events in one statement, so they are journaled atomically.
func (j *Journal) Append(ctx context.Context, event eventjournal.StorableEvent, additionalEvents ...eventjournal.StorableEvent) error {
	allEvents := append(eventjournal.StorableEvents{event}, additionalEvents...)

	sqlQuery, buildErr := j.buildInsertQuery(allEvents)
	if buildErr != nil {
		j.logError(ctx, logMsgBuildInsertQueryFailed, logAttrError, buildErr.Error(), logAttrEventCount, len(allEvents))
		return errors.Join(eventjournal.ErrAppendingEventFailed, buildErr)
	}

	start := time.Now()
	_, execErr := j.db.Exec(ctx, sqlQuery)
	j.logQueryWithDuration(ctx, sqlQuery, logActionAppend, time.Since(start))

	if execErr != nil {
		j.logError(ctx, logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return errors.Join(eventjournal.ErrAppendingEventFailed, execErr)
	}

	return nil
}

// Query retrieves the events matching the filter in journal order.
func (j *Journal) Query(ctx context.Context, filter eventjournal.Filter) (eventjournal.StorableEvents, error) {
	sqlQuery, buildErr := j.buildSelectQuery(filter)
	if buildErr != nil {
		j.logError(ctx, logMsgBuildSelectQueryFailed, logAttrError, buildErr.Error())
		return nil, errors.Join(eventjournal.ErrQueryingEventsFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	j.logQueryWithDuration(ctx, sqlQuery, logActionQuery, time.Since(start))

	if queryErr != nil {
		j.logError(ctx, logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(eventjournal.ErrQueryingEventsFailed, queryErr)
	}
	defer j.closeRows(ctx, rows)

	events, scanErr := j.processQueryResults(ctx, rows)
	if scanErr != nil {
		return nil, scanErr
	}

	if filter.Limit() > 0 {
		// the limited query reads newest first
		slices.Reverse(events)
	}

	return events, nil
}

func (j *Journal) buildInsertQuery(events eventjournal.StorableEvents) (string, error) {
	rows := make([]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, goqu.Record{
			colEventType:  e.EventType,
			colStreamID:   e.StreamID,
			colOccurredAt: e.OccurredAt.UTC().Format(occurredAtLayout),
			colPayload:    string(e.PayloadJSON),
			colMetadata:   string(e.MetadataJSON),
		})
	}

	sqlQuery, _, err := goqu.Dialect(j.dialect).Insert(j.tableName).Rows(rows...).ToSQL()

	return sqlQuery, err
}

func (j *Journal) buildSelectQuery(filter eventjournal.Filter) (string, error) {
	selectStmt := goqu.Dialect(j.dialect).
		From(j.tableName).
		Select(colSequenceNumber, colEventType, colStreamID, colOccurredAt, colPayload, colMetadata)

	if eventTypes := filter.EventTypes(); len(eventTypes) > 0 {
		selectStmt = selectStmt.Where(goqu.C(colEventType).In(eventTypes))
	}

	if streamID := filter.StreamID(); streamID != "" {
		selectStmt = selectStmt.Where(goqu.C(colStreamID).Eq(streamID))
	}

	if from := filter.OccurredFrom(); !from.IsZero() {
		selectStmt = selectStmt.Where(goqu.C(colOccurredAt).Gte(from.UTC().Format(occurredAtLayout)))
	}

	if until := filter.OccurredUntil(); !until.IsZero() {
		selectStmt = selectStmt.Where(goqu.C(colOccurredAt).Lte(until.UTC().Format(occurredAtLayout)))
	}

	if limit := filter.Limit(); limit > 0 {
		selectStmt = selectStmt.Order(goqu.I(colSequenceNumber).Desc()).Limit(uint(limit))
	} else {
		selectStmt = selectStmt.Order(goqu.I(colSequenceNumber).Asc())
	}

	sqlQuery, _, err := selectStmt.ToSQL()

	return sqlQuery, err
}

func (j *Journal) processQueryResults(ctx context.Context, rows adapters.DBRows) (eventjournal.StorableEvents, error) {
	events := make(eventjournal.StorableEvents, 0)
	row := queryResultRow{}

	for rows.Next() {
		if err := rows.Scan(&row.sequenceNumber, &row.eventType, &row.streamID, &row.occurredAt, &row.payload, &row.metadata); err != nil {
			j.logError(ctx, logMsgScanRowFailed, logAttrError, err.Error())
			return nil, errors.Join(eventjournal.ErrScanningDBRowFailed, err)
		}

		event, buildErr := eventjournal.BuildStorableEvent(row.eventType, row.streamID, row.occurredAt, row.payload, row.metadata)
		if buildErr != nil {
			j.logError(ctx, logMsgBuildStorableEventFailed, logAttrError, buildErr.Error(), logAttrEventType, row.eventType)
			return nil, errors.Join(eventjournal.ErrBuildingStorableEventFailed, buildErr)
		}

		events = append(events, event.WithSequenceNumber(eventjournal.SequenceNumberUint(row.sequenceNumber)))
	}

	if err := rows.Err(); err != nil {
		j.logError(ctx, logMsgScanRowFailed, logAttrError, err.Error())
		return nil, errors.Join(eventjournal.ErrScanningDBRowFailed, err)
	}

	return events, nil
}

func (j *Journal) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		j.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (j *Journal) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrQuery, sqlQuery, logAttrDurationMS, float64(duration.Nanoseconds()) / 1e6}

	if j.contextualLogger != nil {
		j.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
		return
	}

	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

func (j *Journal) logInfo(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if j.logger != nil {
		j.logger.Info(msg, args...)
	}
}

func (j *Journal) logWarn(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if j.logger != nil {
		j.logger.Warn(msg, args...)
	}
}

func (j *Journal) logError(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if j.logger != nil {
		j.logger.Error(msg, args...)
	}
}

var _ eventjournal.Journal = (*Journal)(nil)
