// Package borrowbook implements the Borrow Book use case.
//
// A borrower takes an available book for a number of days (14 unless stated otherwise).
// The pure Decide function enforces that the loan period is between 1 and
// core.MaxBorrowingDays days, that the book exists
// and that it is not on loan already. The CommandHandler runs Decide against a snapshot of
// the store and retries the whole cycle when a concurrent change made the snapshot stale,
// so two concurrent borrows of the same book can never both succeed.
package borrowbook
