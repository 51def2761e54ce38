// Package getborrowing implements the Get Borrowing query use case.
//
// It looks up one borrowing record by id and resolves its book and overdue flag.
package getborrowing
