package question

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// ErrNoEligibleQuestion means every question in scope was already asked.
var ErrNoEligibleQuestion = errors.New("no eligible question available")

// Selector picks one unseen question uniformly at random.
type Selector struct {
	repo *repository.QuestionRepository
	intn func(n int) int
}

// NewSelector builds a Selector. intn must return a uniform value in [0, n);
// nil uses math/rand/v2.
func NewSelector(repo *repository.QuestionRepository, intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{repo: repo, intn: intn}
}

// Select computes the eligible set for scope minus excluded and returns one of
// its members, or ErrNoEligibleQuestion when the set is empty.
func (s *Selector) Select(ctx context.Context, scope CategoryScope, excluded []int64) (Question, error) {
	filter := Filter{}.InScope(scope).Excluding(excluded)
	rows, err := s.repo.Filter(ctx, filter.params())
	if err != nil {
		return Question{}, err
	}
	if len(rows) == 0 {
		return Question{}, ErrNoEligibleQuestion
	}
	return toDomain(rows[s.intn(len(rows))]), nil
}
