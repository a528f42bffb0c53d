package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func (h *Handler) CreateReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.reservationSvc.Submit(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetReservations(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var q model.ListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var status *model.Status
	if q.Status != "" {
		status = &q.Status
	}

	list, err := h.reservationSvc.ListFor(c.Request().Context(), actor, q.Scope, status, q.Limit)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetSummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	sum, err := h.reservationSvc.Summary(c.Request().Context(), actor, model.Scope(c.QueryParam("scope")))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) GetReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.reservationSvc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.reservationSvc.Cancel(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// DecideReservation leaves the role check to the service, which reads it
// from the profile store instead of the token.
func (h *Handler) DecideReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.reservationSvc.AdminDecide(c.Request().Context(), actor.ID, id, req.Outcome, req.Annotation)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
