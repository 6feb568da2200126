package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/idudina/library-service/internal/model"
)

func (h *Handler) ListCopies(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	page, size := paging(c)

	copies, err := h.catalogSvc.ListCopies(c.Request().Context(), bookID, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) GetCopy(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	copy, err := h.catalogSvc.GetCopy(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copy)
}

func (h *Handler) CreateCopy(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.CreateCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	copy, err := h.catalogSvc.CreateCopy(c.Request().Context(), bookID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, copy)
}

func (h *Handler) UpdateCopy(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	copy, err := h.catalogSvc.UpdateCopy(c.Request().Context(), bookID, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copy)
}

func (h *Handler) DeleteCopy(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogSvc.DeleteCopy(c.Request().Context(), bookID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
