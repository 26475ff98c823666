package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) GetQuestion(ctx context.Context, id int64) (sqlcgen.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) CreateQuestion(ctx context.Context, arg sqlcgen.CreateQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuestionStore) FilterQuestions(ctx context.Context, arg sqlcgen.FilterQuestionsParams) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func TestQuestionRepository_GetMapsNoRows(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("GetQuestion", mock.Anything, int64(7)).Return(sqlcgen.Question{}, pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Insert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := sqlcgen.CreateQuestionParams{Question: "Q", Answer: "A", Category: 1, Difficulty: 2}
	expect := sqlcgen.Question{ID: 11, Question: "Q", Answer: "A", Category: 1, Difficulty: 2}
	store.On("CreateQuestion", mock.Anything, params).Return(expect, nil)

	got, err := repo.Insert(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Delete(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, int64(1)).Return(int64(1), nil)
	store.On("DeleteQuestion", mock.Anything, int64(2)).Return(int64(0), nil)
	store.On("DeleteQuestion", mock.Anything, int64(3)).Return(int64(0), errors.New("conn reset"))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrNotFound)
	err := repo.Delete(context.Background(), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}

func TestQuestionRepository_FilterNeverSendsNilExclusions(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	expected := sqlcgen.FilterQuestionsParams{ExcludeIds: []int64{}}
	store.On("FilterQuestions", mock.Anything, expected).Return([]sqlcgen.Question{{ID: 1}}, nil)

	rows, err := repo.Filter(context.Background(), sqlcgen.FilterQuestionsParams{})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	store.AssertExpectations(t)
}
