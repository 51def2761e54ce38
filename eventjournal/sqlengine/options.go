package sqlengine

import (
	"errors"
	"regexp"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ErrInvalidTableName is returned when a table name is not a plain SQL identifier.
var ErrInvalidTableName = errors.New("table name must be a plain identifier")

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option defines a functional option for configuring Journal.
type Option func(*Journal) error

// WithTableName sets the table name for the Journal.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return eventjournal.ErrEmptyTableNameSupplied
		}

		if !tableNamePattern.MatchString(tableName) {
			return ErrInvalidTableName
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: schema creation (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger eventjournal.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Journal.
// It takes precedence over the logger set by WithLogger.
func WithContextualLogger(logger eventjournal.ContextualLogger) Option {
	return func(j *Journal) error {
		j.contextualLogger = logger
		return nil
	}
}
