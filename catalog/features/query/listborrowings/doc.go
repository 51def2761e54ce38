// Package listborrowings implements the List Borrowings query use case.
//
// It returns borrowing records in the order they were created, optionally filtered by status.
// The "overdue" status is derived at query time from the due date. Every record is returned
// together with its resolved book, which is absent if the book has been deleted.
package listborrowings
