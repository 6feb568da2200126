package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard dispatches on the caller's role: librarians get the global
// summary, members get their own reservations.
func (h *Handler) Dashboard(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()

	if p.IsLibrarian() {
		dashboard, err := h.dashboardSvc.Librarian(ctx)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, dashboard)
	}

	dashboard, err := h.dashboardSvc.Member(ctx, p.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
