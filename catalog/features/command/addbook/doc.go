// Package addbook implements the Add Book use case.
//
// A librarian adds a book to the catalog. The book receives the next unused id and starts out
// available. There is no business rule that can reject it.
package addbook
