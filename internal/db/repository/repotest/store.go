// Package repotest provides an in-memory implementation of the sqlc query
// surface for tests that should not need Postgres.
package repotest

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Store mimics the Postgres queries with the same ordering and filter semantics.
type Store struct {
	mu         sync.Mutex
	questions  []sqlcgen.Question
	categories []sqlcgen.Category
	nextQ      int64
	nextC      int64
	failures   map[string]error
	calls      map[string]int
}

func NewStore() *Store {
	return &Store{
		nextQ:    1,
		nextC:    1,
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

// FailOn makes the named query return err until cleared with a nil err.
func (s *Store) FailOn(query string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, query)
		return
	}
	s.failures[query] = err
}

// Calls reports how many times the named query ran.
func (s *Store) Calls(query string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[query]
}

// SeedCategory adds a category without counting a query call and returns its id.
func (s *Store) SeedCategory(label string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertCategory(label).ID
}

// SeedQuestion adds a question without counting a query call and returns its id.
func (s *Store) SeedQuestion(text, answer string, category int64, difficulty int32) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertQuestion(sqlcgen.CreateQuestionParams{
		Question: text, Answer: answer, Category: category, Difficulty: difficulty,
	}).ID
}

func (s *Store) insertQuestion(arg sqlcgen.CreateQuestionParams) sqlcgen.Question {
	q := sqlcgen.Question{
		ID:         s.nextQ,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}
	s.nextQ++
	s.questions = append(s.questions, q)
	return q
}

func (s *Store) insertCategory(label string) sqlcgen.Category {
	c := sqlcgen.Category{ID: s.nextC, Type: label}
	s.nextC++
	s.categories = append(s.categories, c)
	return c
}

func (s *Store) enter(query string) error {
	s.calls[query]++
	return s.failures[query]
}

func (s *Store) GetQuestion(_ context.Context, id int64) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetQuestion"); err != nil {
		return sqlcgen.Question{}, err
	}
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return sqlcgen.Question{}, pgx.ErrNoRows
}

func (s *Store) CreateQuestion(_ context.Context, arg sqlcgen.CreateQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateQuestion"); err != nil {
		return sqlcgen.Question{}, err
	}
	return s.insertQuestion(arg), nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteQuestion"); err != nil {
		return 0, err
	}
	before := len(s.questions)
	s.questions = slices.DeleteFunc(s.questions, func(q sqlcgen.Question) bool { return q.ID == id })
	return int64(before - len(s.questions)), nil
}

func (s *Store) FilterQuestions(_ context.Context, arg sqlcgen.FilterQuestionsParams) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FilterQuestions"); err != nil {
		return nil, err
	}
	var out []sqlcgen.Question
	for _, q := range s.questions {
		if arg.Search.Valid && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(arg.Search.String)) {
			continue
		}
		if arg.CategoryID.Valid && q.Category != arg.CategoryID.Int64 {
			continue
		}
		if slices.Contains(arg.ExcludeIds, q.ID) {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListCategoriesByType(_ context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListCategoriesByType"); err != nil {
		return nil, err
	}
	out := slices.Clone(s.categories)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) ListCategoriesByID(_ context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListCategoriesByID"); err != nil {
		return nil, err
	}
	out := slices.Clone(s.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCategory(_ context.Context, id int64) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetCategory"); err != nil {
		return sqlcgen.Category{}, err
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func (s *Store) CreateCategory(_ context.Context, type_ string) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateCategory"); err != nil {
		return sqlcgen.Category{}, err
	}
	return s.insertCategory(type_), nil
}

func (s *Store) DeleteCategory(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteCategory"); err != nil {
		return 0, err
	}
	before := len(s.categories)
	s.categories = slices.DeleteFunc(s.categories, func(c sqlcgen.Category) bool { return c.ID == id })
	return int64(before - len(s.categories)), nil
}
