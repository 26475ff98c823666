package category

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

// Category is the client-facing category shape.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CreateRequest is the body of POST /categories.
type CreateRequest struct {
	Type string `json:"type" validate:"required"`
}

var createMessages = map[string]string{
	"type": "No type for New category provided.",
}

// Labels renders categories as the id -> type object used in listing responses.
func Labels(categories []Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

func fromRow(row sqlcgen.Category) Category {
	return Category{ID: row.ID, Type: row.Type}
}

func fromRows(rows []sqlcgen.Category) []Category {
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out
}
