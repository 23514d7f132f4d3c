// Package borrowingdelivery manages delivery layer of borrowings.
package borrowingdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/internal/middleware"
	"github.com/go-biblio/biblio/pkg/errorspkg"
	"github.com/go-biblio/biblio/pkg/tokenpkg"
	"github.com/go-biblio/biblio/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by borrowing delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package borrowingdelivery
type Service interface {
	Borrow(ctx context.Context, isbn, username string, startDate time.Time) (domain.BorrowTxResult, error)
	Return(ctx context.Context, isbn, username string) error
	ListForBorrower(ctx context.Context, username string) ([]domain.Borrowing, error)
	FindByBookAndBorrower(ctx context.Context, isbn, username string) (domain.Borrowing, error)
}

// Handler facilitates borrowing delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns borrowing handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

func authUsername(gctx *gin.Context) string {
	payload := gctx.MustGet(middleware.AuthorizationPayloadKey).(*tokenpkg.Payload)
	return payload.Username
}

type borrowRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}

type borrowData struct {
	Borrowing domain.Borrowing `json:"borrowing"`
	Book      domain.Book      `json:"book"`
}

// Borrow handles http request to lend a book to the authenticated user.
func (h *Handler) Borrow(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req borrowRequest
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

	result, err := h.service.Borrow(ctx, req.ISBN, authUsername(gctx), time.Now())
	if err != nil {
		switch err {
		case domain.ErrLateBorrowings:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		case domain.ErrBookNotAvailable:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrBookNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: borrowData{
			Borrowing: result.Borrowing,
			Book:      result.Book,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type returnRequest struct {
	ISBN string `uri:"isbn" binding:"required"`
}

// Return handles http request to return a borrowed book.
func (h *Handler) Return(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req returnRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.Return(ctx, req.ISBN, authUsername(gctx)); err != nil {
		switch err {
		case domain.ErrBorrowingNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type listData struct {
	Borrowings []domain.Borrowing `json:"borrowings"`
}

// List handles http request to list the authenticated user's open borrowings.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	borrowings, err := h.service.ListForBorrower(ctx, authUsername(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{Borrowings: borrowings}})
}

type getRequest struct {
	ISBN string `uri:"isbn" binding:"required"`
}

// Get handles http request to fetch the authenticated user's open
// borrowing for a single book.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	borrowing, err := h.service.FindByBookAndBorrower(ctx, req.ISBN, authUsername(gctx))
	if err != nil {
		switch err {
		case domain.ErrBorrowingNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: borrowData{Borrowing: borrowing}})
}
