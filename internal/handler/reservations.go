package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/idudina/library-service/internal/model"
)

func (h *Handler) CreateReservation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rsv, err := h.reservationSvc.CreateReservation(c.Request().Context(), p.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) ReturnReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.reservationSvc.ReturnReservation(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book returned successfully"})
}

func (h *Handler) ListReservations(c echo.Context) error {
	page, size := paging(c)

	var filter model.ReservationFilter
	if v := c.QueryParam("userId"); v != "" {
		userID, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
		}
		filter.UserID = &userID
	}
	if v := c.QueryParam("overdue"); v != "" {
		overdue, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid overdue")
		}
		filter.Overdue = &overdue
	}

	rsvs, err := h.reservationSvc.ListReservations(c.Request().Context(), filter, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsvs)
}

func (h *Handler) GetReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	rsv, err := h.reservationSvc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}
