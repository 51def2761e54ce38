// Package repl provides an interactive console for the catalog.
//
// The Console reads lines with readline (history, Ctrl+R search) and renders results as tables.
// Execute runs one line and can be used without a terminal.
package repl
