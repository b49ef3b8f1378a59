package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/2ntng/library-management/library/internal/model"
)

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.librarySvc.ListAuthors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	author, err := h.librarySvc.GetAuthor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// GetAuthorBooks serves the author with its books attached; population
// already hydrates the relationship, the route is kept for API symmetry.
func (h *Handler) GetAuthorBooks(c echo.Context) error {
	return h.GetAuthor(c)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SearchAuthors(c echo.Context) error {
	keyword, err := keywordParam(c)
	if err != nil {
		return err
	}
	authors, err := h.librarySvc.SearchAuthors(c.Request().Context(), keyword)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}
