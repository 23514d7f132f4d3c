// Package borrowingrepo manages repository layer of borrowings.
package borrowingrepo

import (
	"context"
	"sync"

	"github.com/go-biblio/biblio/internal/domain"
	"github.com/google/uuid"
)

// RepoMem facilitates borrowing repository layer logic over an
// in-memory store. Records are kept in insertion order.
type RepoMem struct {
	mu         sync.RWMutex
	borrowings []domain.Borrowing
}

// NewRepoMem returns an empty borrowing RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// Create creates the borrowing and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateBorrowingParams) (domain.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := uuid.NewRandom()
	if err != nil {
		return domain.Borrowing{}, err
	}

	b := domain.Borrowing{
		ID:        id,
		ISBN:      arg.ISBN,
		Username:  arg.Username,
		StartDate: arg.StartDate,
		DueDate:   arg.DueDate,
	}

	r.borrowings = append(r.borrowings, b)

	return b, nil
}

// Get returns the open borrowing matching both the ISBN and the username.
func (r *RepoMem) Get(ctx context.Context, isbn, username string) (domain.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.borrowings {
		if b.ISBN == isbn && b.Username == username {
			return b, nil
		}
	}

	return domain.Borrowing{}, domain.ErrBorrowingNotFound
}

// Delete removes the open borrowing matching both the ISBN and the
// username and returns the removed record.
func (r *RepoMem) Delete(ctx context.Context, isbn, username string) (domain.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.borrowings {
		if b.ISBN == isbn && b.Username == username {
			r.borrowings = append(r.borrowings[:i], r.borrowings[i+1:]...)
			return b, nil
		}
	}

	return domain.Borrowing{}, domain.ErrBorrowingNotFound
}

// DeleteByID removes the open borrowing with the given ID and returns
// the removed record. Unlike Delete it never touches another record of
// the same ISBN and username pair.
func (r *RepoMem) DeleteByID(ctx context.Context, id uuid.UUID) (domain.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.borrowings {
		if b.ID == id {
			r.borrowings = append(r.borrowings[:i], r.borrowings[i+1:]...)
			return b, nil
		}
	}

	return domain.Borrowing{}, domain.ErrBorrowingNotFound
}

// ListForBorrower returns all open borrowings for the username in insertion order.
func (r *RepoMem) ListForBorrower(ctx context.Context, username string) ([]domain.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []domain.Borrowing

	for _, b := range r.borrowings {
		if b.Username == username {
			found = append(found, b)
		}
	}

	return found, nil
}

// ListForBook returns all open borrowings for the ISBN in insertion order.
func (r *RepoMem) ListForBook(ctx context.Context, isbn string) ([]domain.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []domain.Borrowing

	for _, b := range r.borrowings {
		if b.ISBN == isbn {
			found = append(found, b)
		}
	}

	return found, nil
}
