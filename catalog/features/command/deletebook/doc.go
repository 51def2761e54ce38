// Package deletebook implements the Delete Book use case.
//
// A book can be removed unless it is on loan. Borrowing records of a deleted book stay in the
// catalog and can still be returned.
package deletebook
