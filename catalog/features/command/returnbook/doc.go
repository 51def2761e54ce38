// Package returnbook implements the Return Book use case.
//
// An active borrowing record is closed with the return date and the book becomes available
// again. Overdue records are returned like any other active record. A record whose book has
// been deleted meanwhile is still accepted.
package returnbook
