// Package borrowingservice manages business logic layer of borrowings.
package borrowingservice

import (
	"context"
	"sync"
	"time"

	"github.com/go-biblio/biblio/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by borrowing service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package borrowingservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateBorrowingParams) (domain.Borrowing, error)
	Get(ctx context.Context, isbn, username string) (domain.Borrowing, error)
	Delete(ctx context.Context, isbn, username string) (domain.Borrowing, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (domain.Borrowing, error)
	ListForBorrower(ctx context.Context, username string) ([]domain.Borrowing, error)
}

// BookService provides the catalog interface needed by borrowing service layer.
type BookService interface {
	Get(ctx context.Context, isbn string) (domain.Book, error)
	AdjustQuantity(ctx context.Context, isbn string, delta int32) (domain.Book, error)
}

// Service facilitates borrowing service layer logic.
//
// The mutex covers each Borrow and Return end to end so that the
// lateness check, the record mutation and the quantity adjustment are
// atomic with respect to concurrent calls for the same borrower or book.
type Service struct {
	mu          sync.Mutex
	repo        Repo
	bookService BookService
	now         func() time.Time
}

// New returns borrowing service struct to manage borrowing business logic.
func New(br Repo, bs BookService) *Service {
	return &Service{
		repo:        br,
		bookService: bs,
		now:         time.Now,
	}
}

// toDate truncates t to a whole calendar day in UTC.
func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Borrow lends one copy of the book to the borrower.
//
// It fails with domain.ErrLateBorrowings before touching any state if
// the borrower holds an overdue borrowing, and with
// domain.ErrBookNotAvailable if the book has no free copies. On
// success the record is stored with a due date of the start date plus
// the fixed loan period and the book's available quantity is
// decremented exactly once.
func (s *Service) Borrow(ctx context.Context, isbn, username string, startDate time.Time) (domain.BorrowTxResult, error) {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.BorrowTxResult

	hasLate, err := s.hasOutstandingLate(ctx, username)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if hasLate {
		l.Info().Str("username", username).Err(domain.ErrLateBorrowings).Send()
		return result, domain.ErrLateBorrowings
	}

	book, err := s.bookService.Get(ctx, isbn)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	if book.QuantityAvailable <= 0 {
		l.Info().Str("isbn", isbn).Err(domain.ErrBookNotAvailable).Send()
		return result, domain.ErrBookNotAvailable
	}

	startDate = toDate(startDate)

	arg := domain.CreateBorrowingParams{
		ISBN:      isbn,
		Username:  username,
		StartDate: startDate,
		DueDate:   startDate.AddDate(0, 0, domain.LoanPeriodDays),
	}

	borrowing, err := s.repo.Create(ctx, arg)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	book, err = s.bookService.AdjustQuantity(ctx, isbn, -1)
	if err != nil {
		// The availability was checked above, so this only happens on
		// a catalog fault; undo the created record to keep the ledger
		// consistent. The undo targets the record by ID so that an
		// older open borrowing of the same pair is never removed.
		l.Error().Err(err).Send()

		if _, derr := s.repo.DeleteByID(ctx, borrowing.ID); derr != nil {
			l.Error().Err(derr).Send()
		}

		return result, err
	}

	result = domain.BorrowTxResult{
		Borrowing: borrowing,
		Book:      book,
	}

	return result, nil
}

// Return closes the open borrowing matching the book and the borrower.
//
// It fails with domain.ErrBorrowingNotFound without mutating anything
// when no record matches. The record removal is committed even if the
// quantity increment on the catalog fails afterwards; the ledger stays
// authoritative in that case and the error is reported to the caller.
func (s *Service) Return(ctx context.Context, isbn, username string) error {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Delete(ctx, isbn, username); err != nil {
		l.Info().Str("isbn", isbn).Str("username", username).Err(err).Send()
		return err
	}

	if _, err := s.bookService.AdjustQuantity(ctx, isbn, 1); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}

// HasOutstandingLate reports whether the borrower has any open
// borrowing whose due date has passed. Lateness is derived from the
// due date at query time, never stored.
func (s *Service) HasOutstandingLate(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasOutstandingLate(ctx, username)
}

func (s *Service) hasOutstandingLate(ctx context.Context, username string) (bool, error) {
	borrowings, err := s.repo.ListForBorrower(ctx, username)
	if err != nil {
		return false, err
	}

	// Sample the current date once so every record in this call is
	// compared against the same day.
	today := toDate(s.now())

	for _, b := range borrowings {
		if toDate(b.DueDate).Before(today) {
			return true, nil
		}
	}

	return false, nil
}

// ListForBorrower returns all open borrowings of the borrower in insertion order.
func (s *Service) ListForBorrower(ctx context.Context, username string) ([]domain.Borrowing, error) {
	borrowings, err := s.repo.ListForBorrower(ctx, username)
	if err != nil {
		return nil, err
	}

	return borrowings, nil
}

// FindByBookAndBorrower returns the open borrowing matching both the
// book and the borrower.
func (s *Service) FindByBookAndBorrower(ctx context.Context, isbn, username string) (domain.Borrowing, error) {
	borrowing, err := s.repo.Get(ctx, isbn, username)
	if err != nil {
		return borrowing, err
	}

	return borrowing, nil
}
