package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/pkg/auth"
	mw "github.com/sarpras/reservation-service/pkg/middleware"
	"github.com/sarpras/reservation-service/pkg/validate"
	_ "github.com/sarpras/reservation-service/swagger"
)

type Handler struct {
	reservationSvc ReservationService
	authCfg        auth.Config
	log            *zap.Logger
}

func New(reservationSvc ReservationService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSvc,
		authCfg:        authCfg,
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.JwtAuthentication(h.authCfg),
	)

	api.GET("/resources", h.GetResources)
	api.GET("/schedule/overlaps", h.GetOverlaps)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.GetReservations)
	api.GET("/reservations/summary", h.GetSummary)
	api.GET("/reservations/:id", h.GetReservation)
	api.POST("/reservations/:id/cancel", h.CancelReservation)
	api.POST("/reservations/:id/decision", h.DecideReservation)

	api.GET("/notifications", h.GetNotifications)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
