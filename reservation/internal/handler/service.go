package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarpras/reservation-service/reservation/internal/model"
	"github.com/sarpras/reservation-service/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	ListAvailable(ctx context.Context, kind model.Kind) ([]model.Resource, error)
	ListCatalog(ctx context.Context) (model.Catalog, error)
	FindOverlapping(ctx context.Context, weekday model.Weekday, from, to model.TimeOfDay) ([]model.TeachingSlot, error)
	Submit(ctx context.Context, actor model.Actor, req model.SubmitRequest) (model.Reservation, error)
	Get(ctx context.Context, actor model.Actor, id uuid.UUID) (model.Reservation, error)
	Cancel(ctx context.Context, actor model.Actor, id uuid.UUID) (model.Reservation, error)
	AdminDecide(ctx context.Context, actorID, id uuid.UUID, outcome model.Status, annotation *string) (model.Reservation, error)
	ListFor(ctx context.Context, actor model.Actor, scope model.Scope, status *model.Status, limit uint64) (model.ListReservations, error)
	Summary(ctx context.Context, actor model.Actor, scope model.Scope) (model.Summary, error)
	ListNotifications(ctx context.Context, actor model.Actor, limit uint64) ([]model.Notification, error)
}

var _ ReservationService = (*service.Service)(nil)
