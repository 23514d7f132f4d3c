// Package bookservice manages business logic layer of books.
package bookservice

import (
	"context"

	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/genrepkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by book service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bookservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateBookParams) (domain.Book, error)
	Get(ctx context.Context, isbn string) (domain.Book, error)
	Search(ctx context.Context, term string) ([]domain.Book, error)
	ListAvailable(ctx context.Context) ([]domain.Book, error)
	AdjustQuantity(ctx context.Context, isbn string, delta int32) (domain.Book, error)
}

// Service facilitates book service layer logic.
type Service struct {
	repo Repo
}

// New returns book service struct to manage book business logic.
func New(br Repo) *Service {
	return &Service{repo: br}
}

// Create catalogs a new book and returns it.
func (s *Service) Create(ctx context.Context, arg domain.CreateBookParams) (domain.Book, error) {
	l := zerolog.Ctx(ctx)

	if arg.Quantity <= 0 {
		l.Info().Err(domain.ErrInvalidQuantity).Send()
		return domain.Book{}, domain.ErrInvalidQuantity
	}

	if !genrepkg.IsSupportedGenre(arg.Genre) {
		l.Info().Str("genre", arg.Genre).Msg("unsupported genre")
		return domain.Book{}, domain.ErrInvalidGenre
	}

	book, err := s.repo.Create(ctx, arg)
	if err != nil {
		return book, err
	}

	return book, nil
}

// Get returns the book with the given ISBN.
func (s *Service) Get(ctx context.Context, isbn string) (domain.Book, error) {
	book, err := s.repo.Get(ctx, isbn)
	if err != nil {
		return book, err
	}

	return book, nil
}

// Search returns the books matching the given term in author, title,
// ISBN or genre.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Book, error) {
	books, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return books, nil
}

// ListAvailable returns all books with at least one available copy.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Book, error) {
	books, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	return books, nil
}

// AdjustQuantity changes the available quantity of the book by delta.
func (s *Service) AdjustQuantity(ctx context.Context, isbn string, delta int32) (domain.Book, error) {
	book, err := s.repo.AdjustQuantity(ctx, isbn, delta)
	if err != nil {
		return book, err
	}

	return book, nil
}
