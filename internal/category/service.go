package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/validation"
)

// Service implements category listing, creation and deletion.
type Service struct {
	repo      *repository.CategoryRepository
	cache     ListCache
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewService wires the category service. cache may be nil.
func NewService(repo *repository.CategoryRepository, cache ListCache, validator *validation.Validator, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		validator: validator,
		logger:    logger.With().Str("component", "category_service").Logger(),
	}
}

// List returns every category ordered by label. Cache failures fall through to the store.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		cached, gen, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("category cache read failed")
		case len(cached) > 0:
			return cached, nil
		default:
			generation, cacheable = gen, true
		}
	}

	rows, err := s.repo.ListByType(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list categories: %w", err))
	}
	categories := fromRows(rows)

	if cacheable && len(categories) > 0 {
		if err := s.cache.Set(ctx, generation, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListNonEmpty is List, except that an empty store is reported as NotFound.
func (s *Service) ListNonEmpty(ctx context.Context) ([]Category, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperror.NotFound("", nil)
	}
	return categories, nil
}

// Create inserts a category and returns it together with every category ordered by id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Category, []Category, error) {
	if err := s.validator.Check(req, createMessages); err != nil {
		return Category{}, nil, err
	}

	row, err := s.repo.Insert(ctx, req.Type)
	if err != nil {
		return Category{}, nil, apperror.Unprocessable(fmt.Errorf("insert category: %w", err))
	}
	s.invalidate(ctx)

	all, err := s.repo.ListByID(ctx)
	if err != nil {
		return Category{}, nil, apperror.Unprocessable(fmt.Errorf("list categories after insert: %w", err))
	}
	return fromRow(row), fromRows(all), nil
}

// Delete removes a category by id. Deleting an unknown id is a client error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.BadRequest("Category with id %d does not exist.", id)
		}
		return apperror.Internal(fmt.Errorf("get category %d: %w", id, err))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Unprocessable(fmt.Errorf("delete category %d: %w", id, err))
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
