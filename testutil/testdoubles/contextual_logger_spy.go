package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ContextualLoggerSpy is a ContextualLogger that captures logging calls for testing.
// It also implements the plain Logger interface, recording with a background context.
type ContextualLoggerSpy struct {
	records     []SpyLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args, Context: ctx})
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// Debug implements the Logger interface for testing.
func (s *ContextualLoggerSpy) Debug(msg string, args ...any) {
	s.record(context.Background(), "debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *ContextualLoggerSpy) Info(msg string, args ...any) {
	s.record(context.Background(), "info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *ContextualLoggerSpy) Warn(msg string, args ...any) {
	s.record(context.Background(), "warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *ContextualLoggerSpy) Error(msg string, args ...any) {
	s.record(context.Background(), "error", msg, args)
}

// GetRecords returns a copy of all log records.
func (s *ContextualLoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

func (s *ContextualLoggerSpy) hasLog(level, msg string) bool {
	for _, r := range s.GetRecords() {
		if r.Level == level && r.Message == msg {
			return true
		}
	}

	return false
}

// HasDebugLog checks if a debug log with the message was recorded.
func (s *ContextualLoggerSpy) HasDebugLog(msg string) bool {
	return s.hasLog("debug", msg)
}

// HasInfoLog checks if an info log with the message was recorded.
func (s *ContextualLoggerSpy) HasInfoLog(msg string) bool {
	return s.hasLog("info", msg)
}

// HasWarnLog checks if a warn log with the message was recorded.
func (s *ContextualLoggerSpy) HasWarnLog(msg string) bool {
	return s.hasLog("warn", msg)
}

// HasErrorLog checks if an error log with the message was recorded.
func (s *ContextualLoggerSpy) HasErrorLog(msg string) bool {
	return s.hasLog("error", msg)
}

var _ eventjournal.ContextualLogger = (*ContextualLoggerSpy)(nil)
var _ eventjournal.Logger = (*ContextualLoggerSpy)(nil)
