// Package bookrepo manages repository layer of books.
package bookrepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-biblio/biblio/internal/domain"
)

// RepoMem facilitates book repository layer logic over an in-memory store.
//
// Books are kept in insertion order so listings are deterministic.
type RepoMem struct {
	mu    sync.RWMutex
	order []string
	books map[string]domain.Book
}

// NewRepoMem returns an empty book RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		books: make(map[string]domain.Book),
	}
}

// Create creates the book and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateBookParams) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if arg.Quantity <= 0 {
		return domain.Book{}, domain.ErrInvalidQuantity
	}

	if _, ok := r.books[arg.ISBN]; ok {
		return domain.Book{}, domain.ErrISBNAlreadyExists
	}

	b := domain.Book{
		ISBN:              arg.ISBN,
		Title:             arg.Title,
		Author:            arg.Author,
		Genre:             arg.Genre,
		QuantityTotal:     arg.Quantity,
		QuantityAvailable: arg.Quantity,
		CreatedAt:         time.Now().Truncate(time.Second).UTC(),
	}

	r.books[arg.ISBN] = b
	r.order = append(r.order, arg.ISBN)

	return b, nil
}

// Get returns the book with the given ISBN.
func (r *RepoMem) Get(ctx context.Context, isbn string) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound
	}

	return b, nil
}

// Search returns the books matching the given term in author, title,
// ISBN or genre. The match is case-insensitive; ISBN must match
// exactly, the other fields match on substring.
func (r *RepoMem) Search(ctx context.Context, term string) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)

	var found []domain.Book

	for _, isbn := range r.order {
		b := r.books[isbn]

		if strings.Contains(strings.ToLower(b.Author), lowered) ||
			strings.EqualFold(b.ISBN, term) ||
			strings.Contains(strings.ToLower(b.Title), lowered) ||
			strings.Contains(strings.ToLower(b.Genre), lowered) {
			found = append(found, b)
		}
	}

	if len(found) == 0 {
		return nil, domain.ErrBookNotFound
	}

	return found, nil
}

// ListAvailable returns all books with at least one available copy.
func (r *RepoMem) ListAvailable(ctx context.Context) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var available []domain.Book

	for _, isbn := range r.order {
		if b := r.books[isbn]; b.QuantityAvailable > 0 {
			available = append(available, b)
		}
	}

	return available, nil
}

// AdjustQuantity changes the available quantity of the book by delta
// and returns the updated book. The available quantity never leaves
// the [0, QuantityTotal] range.
func (r *RepoMem) AdjustQuantity(ctx context.Context, isbn string, delta int32) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound
	}

	adjusted := b.QuantityAvailable + delta
	if adjusted < 0 {
		return domain.Book{}, domain.ErrBookNotAvailable
	}

	if adjusted > b.QuantityTotal {
		return domain.Book{}, domain.ErrInvalidQuantity
	}

	b.QuantityAvailable = adjusted
	r.books[isbn] = b

	return b, nil
}
