package core

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// Optional holds a value that may or may not have been supplied.
// The zero value is "not supplied".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a supplied Optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// None returns an Optional that was not supplied.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OrElse returns the value if it was supplied, otherwise the fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.Set {
		return o.Value
	}

	return fallback
}

// UnmarshalJSON marks the Optional as supplied. A JSON null leaves it unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var value T
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &value); err != nil {
		return err
	}

	*o = Some(value)

	return nil
}

// MarshalJSON writes the value, or null if it was not supplied.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(o.Value)
}

// BookPatch lists the book fields an update supplies. Omitted fields stay untouched.
type BookPatch struct {
	Title     Optional[string] `json:"title"`
	Author    Optional[string] `json:"author"`
	ISBN      Optional[string] `json:"isbn"`
	Category  Optional[string] `json:"category"`
	Available Optional[bool]   `json:"available"`
}

// IsEmpty reports whether the patch supplies no field at all.
func (p BookPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Author.Set && !p.ISBN.Set && !p.Category.Set && !p.Available.Set
}

// ApplyTo returns a copy of the book with the supplied fields overwritten.
func (p BookPatch) ApplyTo(book Book) Book {
	book.Title = p.Title.OrElse(book.Title)
	book.Author = p.Author.OrElse(book.Author)
	book.ISBN = p.ISBN.OrElse(book.ISBN)
	book.Category = p.Category.OrElse(book.Category)
	book.Available = p.Available.OrElse(book.Available)

	return book
}
