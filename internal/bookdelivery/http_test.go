package bookdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/errorspkg"
	"github.com/go-biblio/biblio/pkg/genrepkg"
	"github.com/go-biblio/biblio/pkg/randompkg"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*MockService, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("genre", genrepkg.ValidGenre)
	}

	server := gin.New()
	server.POST("/books", handler.Create)
	server.GET("/books/:isbn", handler.Get)
	server.GET("/books", handler.Search)
	server.GET("/books/available", handler.ListAvailable)

	return service, server
}

func randomBook() domain.Book {
	return domain.Book{
		ISBN:              randompkg.ISBN(),
		Title:             randompkg.BookTitle(),
		Author:            randompkg.Author(),
		Genre:             "FANTASY",
		QuantityTotal:     3,
		QuantityAvailable: 3,
	}
}

func TestCreateBookAPI(t *testing.T) {
	book := randomBook()

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"isbn":     book.ISBN,
				"title":    book.Title,
				"author":   book.Author,
				"genre":    book.Genre,
				"quantity": book.QuantityTotal,
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateBookParams{
					ISBN:     book.ISBN,
					Title:    book.Title,
					Author:   book.Author,
					Genre:    book.Genre,
					Quantity: book.QuantityTotal,
				}

				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(book, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), book.ISBN)
			},
		},
		{
			name: "UnsupportedGenre",
			requestBody: gin.H{
				"isbn":     book.ISBN,
				"title":    book.Title,
				"author":   book.Author,
				"genre":    "COOKING",
				"quantity": book.QuantityTotal,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NonPositiveQuantity",
			requestBody: gin.H{
				"isbn":     book.ISBN,
				"title":    book.Title,
				"author":   book.Author,
				"genre":    book.Genre,
				"quantity": -1,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ISBNAlreadyExists",
			requestBody: gin.H{
				"isbn":     book.ISBN,
				"title":    book.Title,
				"author":   book.Author,
				"genre":    book.Genre,
				"quantity": book.QuantityTotal,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Book{}, domain.ErrISBNAlreadyExists)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"isbn":     book.ISBN,
				"title":    book.Title,
				"author":   book.Author,
				"genre":    book.Genre,
				"quantity": book.QuantityTotal,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Book{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, server := newTestServer(t)
			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestGetBookAPI(t *testing.T) {
	book := randomBook()

	testCases := []struct {
		name          string
		isbn          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			isbn: book.ISBN,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(book.ISBN)).
					Times(1).
					Return(book, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), book.Title)
			},
		},
		{
			name: "NotFound",
			isbn: book.ISBN,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Book{}, domain.ErrBookNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, server := newTestServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/books/"+tc.isbn, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestSearchBooksAPI(t *testing.T) {
	book := randomBook()

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			url:  "/books?term=" + book.Author,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Search(gomock.Any(), gomock.Eq(book.Author)).
					Times(1).
					Return([]domain.Book{book}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), book.ISBN)
			},
		},
		{
			name: "MissingTerm",
			url:  "/books",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Search(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			url:  "/books?term=" + book.Author,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Search(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, server := newTestServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestListAvailableBooksAPI(t *testing.T) {
	book := randomBook()

	service, server := newTestServer(t)

	service.EXPECT().
		ListAvailable(gomock.Any()).
		Times(1).
		Return([]domain.Book{book}, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/books/available", nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), book.ISBN)
}
