package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// GetResources returns the available resources of one kind, or both
// catalogs when kind is omitted.
func (h *Handler) GetResources(c echo.Context) error {
	ctx := c.Request().Context()
	kind := model.Kind(c.QueryParam("kind"))
	if kind == "" {
		cat, err := h.reservationSvc.ListCatalog(ctx)
		if err != nil {
			return h.httpError(c, err)
		}
		return c.JSON(http.StatusOK, cat)
	}
	items, err := h.reservationSvc.ListAvailable(ctx, kind)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetOverlaps(c echo.Context) error {
	var q model.OverlapQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	weekday, err := model.ParseWeekday(q.Weekday)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, err := model.ParseTimeOfDay(q.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	to, err := model.ParseTimeOfDay(q.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slots, err := h.reservationSvc.FindOverlapping(c.Request().Context(), weekday, from, to)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, slots)
}

func (h *Handler) GetNotifications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var limit uint64
	if s := c.QueryParam("limit"); s != "" {
		if limit, err = strconv.ParseUint(s, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}
	items, err := h.reservationSvc.ListNotifications(c.Request().Context(), actor, limit)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
