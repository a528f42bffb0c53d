package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/repository"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	resources repository.ResourceRepository
	publisher Publisher
	now       func() time.Time
}

type Option func(*Service)

// WithResources overrides catalog reads, e.g. with a cached repository.
func WithResources(r repository.ResourceRepository) Option {
	return func(s *Service) {
		s.resources = r
	}
}

// WithPublisher routes decision events through p. Without it events are
// handled in-process.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		resources: repo,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = PublisherFunc(s.HandleDecision)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
