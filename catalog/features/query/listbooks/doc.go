// Package listbooks implements the List Books query use case.
//
// It returns the books of the catalog in the order they were added, optionally only those
// whose availability matches a flag. This is a read-only operation on a snapshot of the store.
package listbooks
