package service

import (
	"context"

	"github.com/sarpras/reservation-service/pkg/circuit_breaker"
	"github.com/sarpras/reservation-service/pkg/kafka"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

type Publisher interface {
	PublishDecision(ctx context.Context, ev model.DecisionEvent) error
}

type PublisherFunc func(ctx context.Context, ev model.DecisionEvent) error

func (f PublisherFunc) PublishDecision(ctx context.Context, ev model.DecisionEvent) error {
	return f(ctx, ev)
}

type queuePublisher struct {
	enq kafka.Enqueuer
	cb  circuit_breaker.CircuitBreaker
}

// NewQueuePublisher sends decision events to kafka. While the breaker is
// open calls fail fast with circuit_breaker.ErrOpenCB.
func NewQueuePublisher(enq kafka.Enqueuer, cb circuit_breaker.CircuitBreaker) Publisher {
	return &queuePublisher{enq: enq, cb: cb}
}

func (p *queuePublisher) PublishDecision(_ context.Context, ev model.DecisionEvent) error {
	return p.cb.Call(func() error {
		return p.enq.Enqueue(kafka.DecisionTopic, ev.ReservationID.String(), ev)
	})
}

// HandleDecision stores the requester's notification for a decision.
func (s *Service) HandleDecision(ctx context.Context, ev model.DecisionEvent) error {
	return s.repo.CreateNotification(ctx, model.NotificationFromEvent(ev))
}

func (s *Service) ListNotifications(ctx context.Context, actor model.Actor, limit uint64) ([]model.Notification, error) {
	items, err := s.repo.ListNotifications(ctx, actor.ID, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items, nil
}

