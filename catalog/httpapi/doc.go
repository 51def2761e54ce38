// Package httpapi exposes the catalog as a JSON API over HTTP.
//
// Routes:
//
//	GET    /                              index page
//	GET    /api/books?available=true      list books
//	GET    /api/books/{id}                get one book, {"book": null} if absent
//	POST   /api/books                     add a book
//	PATCH  /api/books/{id}                update the supplied fields of a book
//	DELETE /api/books/{id}                delete a book, {"success": bool, "message": string}
//	GET    /api/borrowings?status=overdue list borrowing records
//	GET    /api/borrowings/{id}           get one record, {"borrowing": null} if absent
//	POST   /api/borrowings                borrow a book
//	POST   /api/borrowings/{id}/return    return a book
//	GET    /api/activity?bookId=3         journaled activity
//
// Errors are rendered as {"error": message}. Unknown ids map to 404, state conflicts to 409 and
// invalid input to 400. Every request carries a correlation id taken from the X-Request-ID
// header or generated; it ends up in the metadata of the journaled events.
package httpapi
