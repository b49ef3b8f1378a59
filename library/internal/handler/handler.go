package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/2ntng/library-management/library/config"
	"github.com/2ntng/library-management/library/internal/errs"
	md "github.com/2ntng/library-management/pkg/middleware"
	"github.com/2ntng/library-management/pkg/validate"
	_ "github.com/2ntng/library-management/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySrv LibraryService, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySrv,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter(cors config.CORS) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cors.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	authors := api.Group("/authors")
	authors.GET("", h.ListAuthors)
	authors.GET("/search", h.SearchAuthors)
	authors.GET("/:id", h.GetAuthor)
	authors.GET("/:id/books", h.GetAuthorBooks)
	authors.POST("", h.CreateAuthor)
	authors.PUT("/:id", h.UpdateAuthor)
	authors.DELETE("/:id", h.DeleteAuthor)

	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.GET("/search", h.SearchBooks)
	books.GET("/available", h.AvailableBooks)
	books.GET("/:id", h.GetBook)
	books.POST("", h.CreateBook)
	books.PUT("/:id", h.UpdateBook)
	books.DELETE("/:id", h.DeleteBook)

	members := api.Group("/members")
	members.GET("", h.ListMembers)
	members.GET("/search", h.SearchMembers)
	members.GET("/:id", h.GetMember)
	members.GET("/:id/borrowed-books", h.GetMemberLoans)
	members.POST("", h.CreateMember)
	members.PUT("/:id", h.UpdateMember)
	members.DELETE("/:id", h.DeleteMember)

	loans := api.Group("/borrowed-books")
	loans.GET("", h.ListLoans)
	loans.GET("/search", h.SearchLoans)
	loans.GET("/active", h.ActiveLoans)
	loans.GET("/overdue", h.OverdueLoans)
	loans.GET("/member/:memberId", h.LoansByMember)
	loans.GET("/book/:bookId", h.LoansByBook)
	loans.GET("/:id", h.GetLoan)
	loans.POST("", h.BorrowBook)
	loans.PUT("/:id/return", h.ReturnBook)
	loans.PUT("/:id", h.UpdateLoan)
	loans.DELETE("/:id", h.DeleteLoan)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain failures onto statuses without leaking store internals.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.Is(err, errs.ErrNoCopies),
		errors.Is(err, errs.ErrBadReference),
		errors.Is(err, errs.ErrInvalidData):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func keywordParam(c echo.Context) (string, error) {
	keyword := c.QueryParam("q")
	if keyword == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	return keyword, nil
}
