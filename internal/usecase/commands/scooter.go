package commands

import (
	"context"

	"eventure/internal/domain/scooter"
	"eventure/internal/infra"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrScooterValidation = errs.New("scooter validation failed")

type ScooterCommands interface {
	Create(ctx context.Context, attrs scooter.Attributes) (*queries.ScooterView, error)
	Update(ctx context.Context, id uuid.UUID, attrs scooter.Attributes) (*queries.ScooterView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scooterCommandsImpl struct {
	repo           ScooterRepository
	scooterQueries queries.ScooterQueries
	cache          CatalogCache
}

func NewScooterCommands(repo ScooterRepository, scooterQueries queries.ScooterQueries, cache CatalogCache) ScooterCommands {
	return &scooterCommandsImpl{repo: repo, scooterQueries: scooterQueries, cache: cache}
}

func (s *scooterCommandsImpl) Create(ctx context.Context, attrs scooter.Attributes) (*queries.ScooterView, error) {
	entity, err := scooter.New(attrs)
	if err != nil {
		return nil, errs.Mark(err, ErrScooterValidation)
	}

	id, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.cache.Invalidate(ctx)
	return s.scooterQueries.GetByID(ctx, id)
}

func (s *scooterCommandsImpl) Update(ctx context.Context, id uuid.UUID, attrs scooter.Attributes) (*queries.ScooterView, error) {
	entity, err := s.repo.LoadForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScooterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Update(attrs); err != nil {
		return nil, errs.Mark(err, ErrScooterValidation)
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.cache.Invalidate(ctx)
	return s.scooterQueries.GetByID(ctx, id)
}

func (s *scooterCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrScooterNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.cache.Invalidate(ctx)
	return nil
}
