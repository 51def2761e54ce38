// Package testdoubles provides spies for the observability interfaces of the eventjournal package.
// They record calls for inspection in tests of handlers, wrappers, and journal engines.
package testdoubles
