// Package getbook implements the Get Book query use case.
//
// It looks up one book by id. An unknown id is not an error, the result just reports that
// nothing was found.
package getbook
