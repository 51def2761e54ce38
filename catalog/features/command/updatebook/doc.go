// Package updatebook implements the Update Book use case.
//
// Only the attributes a BookPatch supplies are overwritten. A patch that would leave the book
// unchanged is an idempotent success without an event.
//
// The availability flag is the one patched attribute that is validated. It may be set only to
// the value the borrowing state already implies: marking a borrowed book available, or a book
// without an active borrowing unavailable, fails with core.ErrInvalidState. Lending and
// returning are the only operations that change it.
package updatebook
