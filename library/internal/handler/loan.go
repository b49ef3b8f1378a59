package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/2ntng/library-management/library/internal/model"
)

func (h *Handler) ListLoans(c echo.Context) error {
	var (
		from *time.Time
		to   *time.Time
	)
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to is invalid")
		}
		to = &t
	}

	loans, err := h.librarySvc.ListLoans(c.Request().Context(), from, to)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetLoan(c echo.Context) error {
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

// BorrowBook creates a loan and takes one available copy of the book.
func (h *Handler) BorrowBook(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return err
	}
	loan, err := h.librarySvc.BorrowBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	loan, err := h.librarySvc.ReturnBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) UpdateLoan(c echo.Context) error {
	var req model.LoanUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return err
	}
	loan, err := h.librarySvc.UpdateLoan(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	if err := h.librarySvc.DeleteLoan(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SearchLoans(c echo.Context) error {
	keyword, err := keywordParam(c)
	if err != nil {
		return err
	}
	loans, err := h.librarySvc.SearchLoans(c.Request().Context(), keyword)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ActiveLoans(c echo.Context) error {
	loans, err := h.librarySvc.ActiveLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) OverdueLoans(c echo.Context) error {
	loans, err := h.librarySvc.OverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) LoansByMember(c echo.Context) error {
	loans, err := h.librarySvc.LoansByMember(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) LoansByBook(c echo.Context) error {
	loans, err := h.librarySvc.LoansByBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}
