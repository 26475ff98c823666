package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/validation"
)

type categoryLister interface {
	List(ctx context.Context) ([]category.Category, error)
}

// Listing is one page of questions plus the context the listing endpoint returns.
type Listing struct {
	Questions  []Question
	Total      int
	Categories []category.Category
}

// Service implements question listing, search, mutation and quiz selection.
type Service struct {
	repo       *repository.QuestionRepository
	categories categoryLister
	selector   *Selector
	validator  *validation.Validator
	logger     zerolog.Logger
}

func NewService(repo *repository.QuestionRepository, categories categoryLister, selector *Selector, validator *validation.Validator, logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		selector:   selector,
		validator:  validator,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// ListPage returns the requested page of all questions ordered by id. An empty
// page is NotFound.
func (s *Service) ListPage(ctx context.Context, page int) (Listing, error) {
	rows, err := s.repo.Filter(ctx, Filter{}.params())
	if err != nil {
		return Listing{}, apperror.Internal(fmt.Errorf("list questions: %w", err))
	}
	all := toDomainList(rows)

	current := Paginate(page, all, PageSize)
	if len(current) == 0 {
		return Listing{}, apperror.NotFound("", nil)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return Listing{}, err
	}

	return Listing{Questions: current, Total: len(all), Categories: categories}, nil
}

// Create validates and inserts a question, then returns it along with the
// requested page of all questions.
func (s *Service) Create(ctx context.Context, req CreateRequest, page int) (Question, Listing, error) {
	if err := s.validator.Check(req, createMessages); err != nil {
		return Question{}, Listing{}, err
	}

	row, err := s.repo.Insert(ctx, sqlcgen.CreateQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int64(req.Category),
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		return Question{}, Listing{}, apperror.Unprocessable(fmt.Errorf("insert question: %w", err))
	}
	s.logger.Info().Int64("question_id", row.ID).Int64("category", row.Category).Msg("question created")

	rows, err := s.repo.Filter(ctx, Filter{}.params())
	if err != nil {
		return Question{}, Listing{}, apperror.Unprocessable(fmt.Errorf("list questions after insert: %w", err))
	}
	all := toDomainList(rows)

	return toDomain(row), Listing{Questions: Paginate(page, all, PageSize), Total: len(all)}, nil
}

// Delete removes a question. An unknown id is a client error rather than NotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.BadRequest("Question with id %d does not exist.", id)
		}
		return apperror.Internal(fmt.Errorf("get question %d: %w", id, err))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Unprocessable(fmt.Errorf("delete question %d: %w", id, err))
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

// Search returns questions containing term. An empty term matches nothing.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	if term == "" {
		return []Question{}, nil
	}
	rows, err := s.repo.Filter(ctx, Filter{}.Matching(term).params())
	if err != nil {
		return nil, apperror.NotFound("", fmt.Errorf("search questions: %w", err))
	}
	return toDomainList(rows), nil
}

// ByCategory returns every question in a category. No matches is a valid empty result.
func (s *Service) ByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	rows, err := s.repo.Filter(ctx, Filter{}.InCategory(categoryID).params())
	if err != nil {
		return nil, apperror.NotFound("", fmt.Errorf("questions for category %d: %w", categoryID, err))
	}
	return toDomainList(rows), nil
}

// Quiz picks a random question in the requested scope that is not in
// previous_questions. A nil question with a nil error means none is left.
func (s *Service) Quiz(ctx context.Context, req QuizRequest) (*Question, error) {
	q, err := s.selector.Select(ctx, req.Scope(), req.Excluded())
	if errors.Is(err, ErrNoEligibleQuestion) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unprocessable(fmt.Errorf("select quiz question: %w", err))
	}
	return &q, nil
}
