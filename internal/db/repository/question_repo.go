package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

type questionStore interface {
	GetQuestion(ctx context.Context, id int64) (sqlcgen.Question, error)
	CreateQuestion(ctx context.Context, arg sqlcgen.CreateQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
	FilterQuestions(ctx context.Context, arg sqlcgen.FilterQuestionsParams) ([]sqlcgen.Question, error)
}

// QuestionRepository wraps sqlc queries for question rows.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// Get fetches a single question, returning ErrNotFound when the id is unknown.
func (r *QuestionRepository) Get(ctx context.Context, id int64) (sqlcgen.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlcgen.Question{}, ErrNotFound
	}
	return q, err
}

// Insert stores a new question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.CreateQuestionParams) (sqlcgen.Question, error) {
	return r.store.CreateQuestion(ctx, params)
}

// Delete removes a question by id. Zero affected rows is reported as ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Filter returns questions matching every non-empty predicate in params, ordered by id.
func (r *QuestionRepository) Filter(ctx context.Context, params sqlcgen.FilterQuestionsParams) ([]sqlcgen.Question, error) {
	if params.ExcludeIds == nil {
		params.ExcludeIds = []int64{}
	}
	return r.store.FilterQuestions(ctx, params)
}
