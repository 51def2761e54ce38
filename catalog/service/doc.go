// Package service is the entry point to the catalog for transports.
//
// Catalog bundles all command and query handlers, wraps each of them with metrics, tracing and
// logging, and exposes the catalog operations as plain methods. The HTTP API and the REPL both
// talk to a Catalog; neither of them knows about snapshots, decisions or the journal.
package service
