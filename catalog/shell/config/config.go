package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Journal drivers.
const (
	DriverMemory   = "memory"
	DriverPGX      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLX     = "sqlx"
	DriverSQLite   = "sqlite"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Environment keys.
const (
	EnvHTTPAddr      = "LIBRARIAN_HTTP_ADDR"
	EnvJournalDriver = "LIBRARIAN_JOURNAL_DRIVER"
	EnvJournalDSN    = "LIBRARIAN_JOURNAL_DSN"
	EnvJournalTable  = "LIBRARIAN_JOURNAL_TABLE"
	EnvLogLevel      = "LIBRARIAN_LOG_LEVEL"
	EnvLogFormat     = "LIBRARIAN_LOG_FORMAT"
	EnvOTel          = "LIBRARIAN_OTEL"
	EnvSeed          = "LIBRARIAN_SEED"
	EnvCORSOrigins   = "LIBRARIAN_CORS_ORIGINS"
)

const (
	defaultHTTPAddr     = ":5000"
	defaultJournalTable = "catalog_events"
	defaultLogLevel     = "info"
)

var (
	// ErrUnknownJournalDriver is returned for a driver other than the Driver* constants.
	ErrUnknownJournalDriver = errors.New("unknown journal driver")

	// ErrMissingJournalDSN is returned when a SQL journal driver is configured without a DSN.
	ErrMissingJournalDSN = errors.New("journal dsn is required for sql drivers")

	// ErrUnknownLogFormat is returned for a log format other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format")

	// ErrInvalidSetting is returned when a setting cannot be parsed.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Config holds the settings of the librarian binary.
type Config struct {
	HTTPAddr      string
	JournalDriver string
	JournalDSN    string
	JournalTable  string
	LogLevel      string
	LogFormat     string
	OTel          bool
	Seed          bool
	CORSOrigins   []string
}

// Default returns the settings used when the environment is empty.
func Default() Config {
	return Config{
		HTTPAddr:      defaultHTTPAddr,
		JournalDriver: DriverMemory,
		JournalTable:  defaultJournalTable,
		LogLevel:      defaultLogLevel,
		LogFormat:     LogFormatText,
		OTel:          false,
		Seed:          true,
		CORSOrigins:   []string{"*"},
	}
}

// Load reads the settings from the environment, falling back to Default for unset keys.
func Load() (Config, error) {
	def := Default()

	cfg := Config{
		HTTPAddr:      getEnv(EnvHTTPAddr, def.HTTPAddr),
		JournalDriver: strings.ToLower(getEnv(EnvJournalDriver, def.JournalDriver)),
		JournalDSN:    getEnv(EnvJournalDSN, def.JournalDSN),
		JournalTable:  getEnv(EnvJournalTable, def.JournalTable),
		LogLevel:      getEnv(EnvLogLevel, def.LogLevel),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, def.LogFormat)),
		CORSOrigins:   splitList(getEnv(EnvCORSOrigins, strings.Join(def.CORSOrigins, ","))),
	}

	var err error

	if cfg.OTel, err = getEnvBool(EnvOTel, def.OTel); err != nil {
		return Config{}, err
	}

	if cfg.Seed, err = getEnvBool(EnvSeed, def.Seed); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings that Load and the command line flags can get wrong.
func (c Config) Validate() error {
	switch c.JournalDriver {
	case DriverMemory:
	case DriverPGX, DriverPostgres, DriverSQLX, DriverSQLite:
		if c.JournalDSN == "" {
			return fmt.Errorf("%w: %s", ErrMissingJournalDSN, c.JournalDriver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownJournalDriver, c.JournalDriver)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
	}

	return value, nil
}

func splitList(raw string) []string {
	var items []string

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
