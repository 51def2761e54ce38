// Package config builds the runtime wiring of the librarian binary from the environment:
// settings, the slog logger, the event journal connection and the OpenTelemetry providers.
//
// Every setting has a LIBRARIAN_ prefixed environment key and a default, so an empty
// environment starts an in-memory catalog with the demonstration data on :5000.
package config
