package domain

import (
	"errors"
	"time"
)

var (
	// ErrBookNotFound indicates that the book is not found.
	ErrBookNotFound = errors.New("book not found")
	// ErrISBNAlreadyExists indicates that the book with the given ISBN already exists.
	ErrISBNAlreadyExists = errors.New("ISBN already exists")
	// ErrBookNotAvailable indicates that the book has no available copies left.
	ErrBookNotAvailable = errors.New("book not available")
	// ErrInvalidQuantity indicates a non-positive book quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidGenre indicates an unsupported book genre.
	ErrInvalidGenre = errors.New("unsupported genre")
)

// Book holds catalog data for a single title.
//
// QuantityAvailable is the number of copies not covered by an open
// borrowing; it must always equal QuantityTotal minus the open
// borrowings for the ISBN and never go below zero.
type Book struct {
	ISBN              string    `json:"isbn"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Genre             string    `json:"genre"`
	QuantityTotal     int32     `json:"quantity_total"`
	QuantityAvailable int32     `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

// CreateBookParams is the input data to create a book.
type CreateBookParams struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	Quantity int32  `json:"quantity"`
}
