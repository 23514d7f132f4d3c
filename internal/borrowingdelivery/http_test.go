package borrowingdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/internal/middleware"
	"github.com/go-biblio/biblio/pkg/errorspkg"
	"github.com/go-biblio/biblio/pkg/randompkg"
	"github.com/go-biblio/biblio/pkg/tokenpkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*MockService, tokenpkg.Maker, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	authorized := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	authorized.POST("/borrowings", handler.Borrow)
	authorized.GET("/borrowings", handler.List)
	authorized.GET("/borrowings/:isbn", handler.Get)
	authorized.DELETE("/borrowings/:isbn", handler.Return)

	return service, tokenMaker, server
}

func TestBorrowAPI(t *testing.T) {
	username := randompkg.Username()
	isbn := randompkg.ISBN()

	borrowing := domain.Borrowing{
		ISBN:     isbn,
		Username: username,
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			requestBody: gin.H{"isbn": isbn},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Eq(isbn), gomock.Eq(username), gomock.Any()).
					Times(1).
					Return(domain.BorrowTxResult{Borrowing: borrowing}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), isbn)
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: gin.H{"isbn": isbn},
			setupAuth:   func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:        "MissingISBN",
			requestBody: gin.H{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:        "LateBorrowings",
			requestBody: gin.H{"isbn": isbn},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BorrowTxResult{}, domain.ErrLateBorrowings)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:        "BookNotAvailable",
			requestBody: gin.H{"isbn": isbn},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BorrowTxResult{}, domain.ErrBookNotAvailable)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:        "BookNotFound",
			requestBody: gin.H{"isbn": isbn},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BorrowTxResult{}, domain.ErrBookNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:        "InternalError",
			requestBody: gin.H{"isbn": isbn},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Borrow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BorrowTxResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, tokenMaker, server := newTestServer(t)
			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/borrowings", bytes.NewReader(body))
			require.NoError(t, err)

			tc.setupAuth(t, request, tokenMaker)
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestReturnAPI(t *testing.T) {
	username := randompkg.Username()
	isbn := randompkg.ISBN()

	testCases := []struct {
		name          string
		isbn          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			isbn: isbn,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Return(gomock.Any(), gomock.Eq(isbn), gomock.Eq(username)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NotFound",
			isbn: isbn,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Return(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrBorrowingNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InternalError",
			isbn: isbn,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Return(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, tokenMaker, server := newTestServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodDelete, "/borrowings/"+tc.isbn, nil)
			require.NoError(t, err)

			middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestListBorrowingsAPI(t *testing.T) {
	username := randompkg.Username()

	borrowings := []domain.Borrowing{
		{ISBN: randompkg.ISBN(), Username: username},
		{ISBN: randompkg.ISBN(), Username: username},
	}

	service, tokenMaker, server := newTestServer(t)

	service.EXPECT().
		ListForBorrower(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(borrowings, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/borrowings", nil)
	require.NoError(t, err)

	middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	for _, b := range borrowings {
		require.True(t, strings.Contains(recorder.Body.String(), b.ISBN))
	}
}

func TestGetBorrowingAPI(t *testing.T) {
	username := randompkg.Username()
	isbn := randompkg.ISBN()

	testCases := []struct {
		name          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					FindByBookAndBorrower(gomock.Any(), gomock.Eq(isbn), gomock.Eq(username)).
					Times(1).
					Return(domain.Borrowing{ISBN: isbn, Username: username}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), isbn)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					FindByBookAndBorrower(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Borrowing{}, domain.ErrBorrowingNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, tokenMaker, server := newTestServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/borrowings/"+isbn, nil)
			require.NoError(t, err)

			middleware.AddAuthorization(t, request, tokenMaker, middleware.AuthorizationTypeBearer, username, time.Minute)
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
