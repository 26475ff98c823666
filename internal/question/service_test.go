package question

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/db/repository/repotest"
	"github.com/gokatarajesh/trivia-api/internal/validation"
)

func newTestService(store *repotest.Store) *Service {
	logger := zerolog.New(io.Discard)
	validator := validation.New()
	questionRepo := repository.NewQuestionRepository(store)
	categorySvc := category.NewService(repository.NewCategoryRepository(store), nil, validator, logger)
	return NewService(questionRepo, categorySvc, NewSelector(questionRepo, nil), validator, logger)
}

func TestCreateValidatesBeforeTouchingStore(t *testing.T) {
	complete := CreateRequest{Question: "Q?", Answer: "A", Category: 1, Difficulty: 2}

	cases := []struct {
		name    string
		mutate  func(r *CreateRequest)
		message string
	}{
		{"question", func(r *CreateRequest) { r.Question = "" }, "Question can not be blank"},
		{"answer", func(r *CreateRequest) { r.Answer = "" }, "Answer can not be blank"},
		{"category", func(r *CreateRequest) { r.Category = 0 }, "Category can not be blank"},
		{"difficulty", func(r *CreateRequest) { r.Difficulty = 0 }, "Difficulty can not be blank"},
		{"first missing wins", func(r *CreateRequest) { r.Answer = ""; r.Difficulty = 0 }, "Answer can not be blank"},
		{"difficulty above int32", func(r *CreateRequest) { r.Difficulty = 1 << 32 }, difficultyRangeMessage},
		{"difficulty wraps to five", func(r *CreateRequest) { r.Difficulty = 1<<32 + 5 }, difficultyRangeMessage},
		{"difficulty below int32", func(r *CreateRequest) { r.Difficulty = -1<<31 - 1 }, difficultyRangeMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := repotest.NewStore()
			svc := newTestService(store)

			req := complete
			tc.mutate(&req)
			_, _, err := svc.Create(context.Background(), req, 1)

			assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
			assert.Equal(t, tc.message, apperror.MessageOf(err))
			assert.Zero(t, store.Calls("CreateQuestion"))
		})
	}
}

func TestCreateThenListIncludesQuestion(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	created, listing, err := svc.Create(context.Background(), CreateRequest{
		Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, 5, listing.Total)

	page, err := svc.ListPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, page.Questions, created)
	assert.Len(t, page.Categories, 2)
}

func TestCreateStoreFailureIsUnprocessable(t *testing.T) {
	store := seededStore()
	store.FailOn("CreateQuestion", errors.New("disk full"))
	svc := newTestService(store)

	_, _, err := svc.Create(context.Background(), CreateRequest{Question: "Q", Answer: "A", Category: 1, Difficulty: 1}, 1)
	assert.Equal(t, apperror.KindUnprocessable, apperror.KindOf(err))
}

func TestListPageOutOfRangeIsNotFound(t *testing.T) {
	svc := newTestService(seededStore())

	_, err := svc.ListPage(context.Background(), 2)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListPageCategoriesOrderedByType(t *testing.T) {
	svc := newTestService(seededStore())

	listing, err := svc.ListPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []category.Category{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}}, listing.Categories)
	assert.Equal(t, 4, listing.Total)
}

func TestDeleteUnknownIsBadRequest(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	err := svc.Delete(context.Background(), 999999)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Equal(t, "Question with id 999999 does not exist.", apperror.MessageOf(err))
	assert.Zero(t, store.Calls("DeleteQuestion"))
}

func TestDeleteRemovesQuestion(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	require.NoError(t, svc.Delete(context.Background(), 2))

	err := svc.Delete(context.Background(), 2)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestDeleteStoreFailureIsUnprocessable(t *testing.T) {
	store := seededStore()
	store.FailOn("DeleteQuestion", errors.New("lock timeout"))
	svc := newTestService(store)

	err := svc.Delete(context.Background(), 1)
	assert.Equal(t, apperror.KindUnprocessable, apperror.KindOf(err))
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newTestService(seededStore())

	results, err := svc.Search(context.Background(), "TITLE")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(4), results[0].ID)

	results, err = svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	svc := newTestService(seededStore())

	results, err := svc.Search(context.Background(), "%")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchStoreFailureIsNotFound(t *testing.T) {
	store := seededStore()
	store.FailOn("FilterQuestions", errors.New("boom"))
	svc := newTestService(store)

	_, err := svc.Search(context.Background(), "organ")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestByCategoryEmptyIsValid(t *testing.T) {
	svc := newTestService(seededStore())

	results, err := svc.ByCategory(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results, err = svc.ByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestQuizReturnsNilWhenExhausted(t *testing.T) {
	svc := newTestService(seededStore())

	q, err := svc.Quiz(context.Background(), QuizRequest{
		PreviousQuestions: []FlexInt{3},
		QuizCategory:      &QuizCategory{Type: "Art", ID: 2},
	})
	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestQuizStoreFailureIsUnprocessable(t *testing.T) {
	store := seededStore()
	store.FailOn("FilterQuestions", errors.New("boom"))
	svc := newTestService(store)

	_, err := svc.Quiz(context.Background(), QuizRequest{})
	assert.Equal(t, apperror.KindUnprocessable, apperror.KindOf(err))
}
