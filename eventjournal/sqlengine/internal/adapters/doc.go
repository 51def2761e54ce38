// Package adapters provide database adapter implementations for the SQL event journal.
//
// This package implements the adapter pattern to support multiple database libraries:
// pgxpool.Pool, sql.DB (lib/pq or mattn/go-sqlite3), and sqlx.DB. All adapters provide
// equivalent functionality through a common DBAdapter interface, allowing the journal to
// work with any supported connection type.
package adapters
