package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// ListAvailable returns resources of kind whose status is available,
// ordered by name. Store failures are returned as is.
func (s *Service) ListAvailable(ctx context.Context, kind model.Kind) ([]model.Resource, error) {
	if !kind.Valid() {
		return nil, &errs.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", kind), Err: errs.ErrUnknownResource}
	}
	items, err := s.resources.ListAvailable(ctx, kind)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Resource{}
	}
	return items, nil
}

func (s *Service) ListCatalog(ctx context.Context) (model.Catalog, error) {
	var cat model.Catalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cat.Rooms, err = s.ListAvailable(ctx, model.KindRoomKey)
		return err
	})
	g.Go(func() (err error) {
		cat.Projectors, err = s.ListAvailable(ctx, model.KindProjector)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

func (s *Service) resourceExists(ctx context.Context, kind model.Kind, id uuid.UUID) error {
	_, err := s.resources.GetResource(ctx, kind, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound):
		return &errs.ValidationError{Field: "resourceId", Message: fmt.Sprintf("no %s with id %s", kind, id), Err: errs.ErrUnknownResource}
	}
	return err
}
