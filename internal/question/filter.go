package question

import (
	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Filter composes the question predicates understood by the store. The zero
// Filter matches every question.
type Filter struct {
	search     *string
	categoryID *int64
	excludeIDs []int64
}

// Matching restricts to questions whose text contains term, ignoring case.
func (f Filter) Matching(term string) Filter {
	f.search = &term
	return f
}

// InCategory restricts to questions whose category equals id.
func (f Filter) InCategory(id int64) Filter {
	f.categoryID = &id
	return f
}

// InScope applies the category restriction of scope, if any.
func (f Filter) InScope(scope CategoryScope) Filter {
	if id, ok := scope.ID(); ok {
		return f.InCategory(id)
	}
	return f
}

// Excluding drops questions whose id is in ids.
func (f Filter) Excluding(ids []int64) Filter {
	f.excludeIDs = append(append([]int64{}, f.excludeIDs...), ids...)
	return f
}

func (f Filter) params() sqlcgen.FilterQuestionsParams {
	p := sqlcgen.FilterQuestionsParams{ExcludeIds: []int64{}}
	if f.search != nil {
		p.Search = pgtype.Text{String: *f.search, Valid: true}
	}
	if f.categoryID != nil {
		p.CategoryID = pgtype.Int8{Int64: *f.categoryID, Valid: true}
	}
	if len(f.excludeIDs) > 0 {
		p.ExcludeIds = f.excludeIDs
	}
	return p
}
