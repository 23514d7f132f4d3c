// Package bookdelivery manages delivery layer of books.
package bookdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/errorspkg"
	"github.com/go-biblio/biblio/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by book delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bookdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateBookParams) (domain.Book, error)
	Get(ctx context.Context, isbn string) (domain.Book, error)
	Search(ctx context.Context, term string) ([]domain.Book, error)
	ListAvailable(ctx context.Context) ([]domain.Book, error)
}

// Handler facilitates book delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns book handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

type createRequest struct {
	ISBN     string `json:"isbn" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Genre    string `json:"genre" binding:"required,genre"`
	Quantity int32  `json:"quantity" binding:"required,gt=0"`
}

type bookData struct {
	Book domain.Book `json:"book"`
}

type listData struct {
	Books []domain.Book `json:"books"`
}

// Create handles http request to catalog a new book.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.CreateBookParams{
		ISBN:     req.ISBN,
		Title:    req.Title,
		Author:   req.Author,
		Genre:    req.Genre,
		Quantity: req.Quantity,
	}

	book, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrISBNAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidQuantity, domain.ErrInvalidGenre:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookData{Book: book}})
}

type getRequest struct {
	ISBN string `uri:"isbn" binding:"required"`
}

// Get handles http request to return a single book by ISBN.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	book, err := h.service.Get(ctx, req.ISBN)
	if err != nil {
		switch err {
		case domain.ErrBookNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookData{Book: book}})
}

type searchRequest struct {
	Term string `form:"term" binding:"required"`
}

// Search handles http request to search books by title, author, ISBN
// or genre.
func (h *Handler) Search(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	books, err := h.service.Search(ctx, req.Term)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Books: books}})
}

// ListAvailable handles http request to list books with available copies.
func (h *Handler) ListAvailable(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	books, err := h.service.ListAvailable(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Books: books}})
}
