package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// PageSize is the fixed number of questions per listing page.
const PageSize = 10

// anyCategoryMarker is the quiz_category.type sent by clients to mean "all categories".
const anyCategoryMarker = "click"

// Question represents the payload delivered to clients.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
}

// FlexInt decodes from a JSON number or a numeric string. An empty string or
// null decodes to zero.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// CreateRequest is the body of POST /questions.
type CreateRequest struct {
	Question   string  `json:"question" validate:"required"`
	Answer     string  `json:"answer" validate:"required"`
	Category   FlexInt `json:"category" validate:"required"`
	Difficulty FlexInt `json:"difficulty" validate:"required,min=-2147483648,max=2147483647"`
}

const difficultyRangeMessage = "Difficulty must be between -2147483648 and 2147483647"

var createMessages = map[string]string{
	"question":       "Question can not be blank",
	"answer":         "Answer can not be blank",
	"category":       "Category can not be blank",
	"difficulty":     "Difficulty can not be blank",
	"difficulty.min": difficultyRangeMessage,
	"difficulty.max": difficultyRangeMessage,
}

// SearchRequest is the body of POST /questions/search.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the category a quiz is played in.
type QuizCategory struct {
	Type string  `json:"type"`
	ID   FlexInt `json:"id"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Scope resolves the requested category. A missing category, the "click"
// marker, or id 0 all mean any category.
func (r QuizRequest) Scope() CategoryScope {
	if r.QuizCategory == nil || r.QuizCategory.Type == anyCategoryMarker || r.QuizCategory.ID == 0 {
		return AnyCategory()
	}
	return SpecificCategory(int64(r.QuizCategory.ID))
}

// Excluded returns the previously asked question ids.
func (r QuizRequest) Excluded() []int64 {
	ids := make([]int64, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		ids = append(ids, int64(id))
	}
	return ids
}

// CategoryScope is either every category or one specific category.
type CategoryScope struct {
	any bool
	id  int64
}

func AnyCategory() CategoryScope { return CategoryScope{any: true} }

func SpecificCategory(id int64) CategoryScope { return CategoryScope{id: id} }

// ID reports the category id and whether the scope is specific.
func (c CategoryScope) ID() (int64, bool) {
	return c.id, !c.any
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Difficulty: row.Difficulty,
		Category:   row.Category,
	}
}

func toDomainList(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}
