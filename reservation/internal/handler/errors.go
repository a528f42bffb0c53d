package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/pkg/auth"
	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func (h *Handler) httpError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errs.IsValidation(err):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrNotOwner):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		h.log.Error(c.Path(), zap.String("kind", errs.Kind(err)), zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}

func actorFrom(c echo.Context) (model.Actor, error) {
	user, err := auth.GetUser(c.Request().Context())
	if err != nil {
		return model.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	role, err := model.ParseRole(user.Role)
	if err != nil {
		return model.Actor{}, echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return model.Actor{ID: user.ID, Role: role}, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return id, nil
}
