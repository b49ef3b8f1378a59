package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/internal/errs"
	"github.com/2ntng/library-management/library/internal/handler"
	"github.com/2ntng/library-management/library/internal/model"
	"github.com/2ntng/library-management/pkg/validate"

	service_mocks "github.com/2ntng/library-management/library/internal/handler/mocks"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return model.NewDate(d)
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		bodyContains string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	borrowDate := date(t, "2026-08-01")
	dueDate := date(t, "2026-08-15")

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookId":"b1","memberId":"m1","borrowDate":"2026-08-01","dueDate":"2026-08-15"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), model.BorrowRequest{
						BookID:     "b1",
						MemberID:   "m1",
						BorrowDate: borrowDate,
						DueDate:    &dueDate,
					}).
					Return(model.BorrowedBook{
						ID:         "7d4fcc41-6b52-4e23-9c44-74a2a0dd9f10",
						BookID:     "b1",
						MemberID:   "m1",
						BorrowDate: borrowDate,
						DueDate:    &dueDate,
						Status:     model.StatusBorrowed,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"7d4fcc41-6b52-4e23-9c44-74a2a0dd9f10","bookId":"b1","memberId":"m1","borrowDate":"2026-08-01","dueDate":"2026-08-15","returnDate":null,"status":"BORROWED"}`,
			},
		},
		{
			name: "ok. nested refs",
			body: `{"book":{"id":"b1"},"member":{"id":"m1"},"borrowDate":"2026-08-01"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), model.BorrowRequest{
						BookID:     "b1",
						MemberID:   "m1",
						BorrowDate: borrowDate,
						Book:       &model.Ref{ID: "b1"},
						Member:     &model.Ref{ID: "m1"},
					}).
					Return(model.BorrowedBook{
						ID:         "b8a0c0aa-14a1-4f0e-ae89-15b0a4e4f0da",
						BookID:     "b1",
						MemberID:   "m1",
						BorrowDate: borrowDate,
						Status:     model.StatusBorrowed,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b8a0c0aa-14a1-4f0e-ae89-15b0a4e4f0da","bookId":"b1","memberId":"m1","borrowDate":"2026-08-01","dueDate":null,"returnDate":null,"status":"BORROWED"}`,
			},
		},
		{
			name:         "err. bookId required",
			body:         `{"memberId":"m1","borrowDate":"2026-08-01"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "BookID",
			},
		},
		{
			name: "err. no copies",
			body: `{"bookId":"b1","memberId":"m1","borrowDate":"2026-08-01"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any()).
					Return(model.BorrowedBook{}, errs.ErrNoCopies)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"no available copies for this book"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"bookId":"b1","memberId":"m1","borrowDate":"2026-08-01"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any()).
					Return(model.BorrowedBook{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/borrowed-books", h.BorrowBook)

			r := httptest.NewRequest(http.MethodPost, "/api/borrowed-books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService, id string)

	borrowDate := date(t, "2026-08-01")
	dueDate := date(t, "2026-08-15")
	returnDate := date(t, "2026-08-10")

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "l1",
			mockBehavior: func(r *service_mocks.MockLibraryService, id string) {
				r.EXPECT().
					ReturnBook(gomock.Any(), id).
					Return(model.BorrowedBook{
						ID:         id,
						BookID:     "b1",
						MemberID:   "m1",
						BorrowDate: borrowDate,
						DueDate:    &dueDate,
						ReturnDate: &returnDate,
						Status:     model.StatusReturned,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"l1","bookId":"b1","memberId":"m1","borrowDate":"2026-08-01","dueDate":"2026-08-15","returnDate":"2026-08-10","status":"RETURNED"}`,
			},
		},
		{
			name: "err. already returned",
			id:   "l1",
			mockBehavior: func(r *service_mocks.MockLibraryService, id string) {
				r.EXPECT().
					ReturnBook(gomock.Any(), id).
					Return(model.BorrowedBook{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PUT("/api/borrowed-books/:id/return", h.ReturnBook)

			r := httptest.NewRequest(http.MethodPut, "/api/borrowed-books/"+tt.id+"/return", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService, id string)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "b1",
			mockBehavior: func(r *service_mocks.MockLibraryService, id string) {
				r.EXPECT().
					GetBook(gomock.Any(), id).
					Return(model.Book{
						ID:              id,
						Title:           "The Go Programming Language",
						Category:        "Programming",
						PublishingYear:  2015,
						ISBN:            "978-0134190440",
						TotalCopies:     3,
						AvailableCopies: 2,
						AuthorID:        "a1",
						Author: &model.Author{
							ID:   "a1",
							Name: "Alan Donovan",
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"b1","title":"The Go Programming Language","category":"Programming","publishingYear":2015,"isbn":"978-0134190440","totalCopies":3,"availableCopies":2,"authorId":"a1","author":{"id":"a1","name":"Alan Donovan"}}`,
			},
		},
		{
			name: "err. not found",
			id:   "missing",
			mockBehavior: func(r *service_mocks.MockLibraryService, id string) {
				r.EXPECT().
					GetBook(gomock.Any(), id).
					Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/books/:id", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/api/books/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchAuthors(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService, keyword string)

	var tests = []struct {
		name         string
		keyword      string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:    "ok",
			keyword: "orwell",
			mockBehavior: func(r *service_mocks.MockLibraryService, keyword string) {
				r.EXPECT().
					SearchAuthors(gomock.Any(), keyword).
					Return([]model.Author{
						{ID: "a1", Name: "George Orwell", Nationality: "British"},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":"a1","name":"George Orwell","nationality":"British"}]`,
			},
		},
		{
			name:         "err. empty keyword",
			keyword:      "",
			mockBehavior: func(r *service_mocks.MockLibraryService, keyword string) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"q is required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/authors/search", h.SearchAuthors)

			r := httptest.NewRequest(http.MethodGet, "/api/authors/search?q="+tt.keyword, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.keyword)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListLoans(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	borrowDate := date(t, "2026-08-01")
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok. date range",
			query: "?from=2026-08-01&to=2026-08-31",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListLoans(gomock.Any(), &from, &to).
					Return([]model.BorrowedBook{
						{
							ID:         "l1",
							BookID:     "b1",
							MemberID:   "m1",
							BorrowDate: borrowDate,
							Status:     model.StatusBorrowed,
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":"l1","bookId":"b1","memberId":"m1","borrowDate":"2026-08-01","dueDate":null,"returnDate":null,"status":"BORROWED"}]`,
			},
		},
		{
			name:         "err. bad from",
			query:        "?from=01-08-2026",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"from is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/borrowed-books", h.ListLoans)

			r := httptest.NewRequest(http.MethodGet, "/api/borrowed-books"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_OverdueLoans(t *testing.T) {
	t.Parallel()
	borrowDate := date(t, "2026-07-01")
	dueDate := date(t, "2026-07-15")

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/borrowed-books/overdue", h.OverdueLoans)

	svc.EXPECT().
		OverdueLoans(gomock.Any()).
		Return([]model.BorrowedBook{
			{
				ID:         "l1",
				BookID:     "b1",
				MemberID:   "m1",
				BorrowDate: borrowDate,
				DueDate:    &dueDate,
				Status:     model.StatusBorrowed,
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/borrowed-books/overdue", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":"l1","bookId":"b1","memberId":"m1","borrowDate":"2026-07-01","dueDate":"2026-07-15","returnDate":null,"status":"BORROWED"}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateAuthor(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		bodyContains string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"George Orwell","nationality":"British"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateAuthor(gomock.Any(), model.AuthorRequest{
						Name:        "George Orwell",
						Nationality: "British",
					}).
					Return(model.Author{
						ID:          "a1",
						Name:        "George Orwell",
						Nationality: "British",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"a1","name":"George Orwell","nationality":"British"}`,
			},
		},
		{
			name:         "err. name required",
			body:         `{"nationality":"British"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Name",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/authors", h.CreateAuthor)

			r := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}
