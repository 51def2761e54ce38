package core

// Book is a title in the catalog.
// Available is false if and only if an active borrowing record references the book.
type Book struct {
	ID        BookID `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}
