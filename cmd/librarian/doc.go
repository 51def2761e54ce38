// Package main implements librarian, the command line entry point of the library catalog.
//
// librarian serve runs the JSON HTTP API, librarian repl opens an interactive console on the
// same catalog. Both read their settings from LIBRARIAN_* environment variables, and every
// setting can be overridden with the matching persistent flag:
//
//	librarian serve --addr :8080 --journal-driver sqlite --journal-dsn catalog.db
//	librarian repl --seed=false
package main
