package question

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

const quizBodyMessage = "Please provide a JSON body with previous Question Ids and optional category. Thanks"

// HTTPHandler exposes the question, search and quiz endpoints.
type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /questions?page=N
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page := PageFromQuery(r.URL.Query().Get("page"))
	listing, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"categories":       category.Labels(listing.Categories),
		"current_category": nil,
	})
}

// Create handles POST /questions
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := render.DecodeBody(r, &req); err != nil {
		h.fail(w, r, apperror.BadRequest("Request does not contain a valid JSON body."))
		return
	}

	page := PageFromQuery(r.URL.Query().Get("page"))
	created, listing, err := h.svc.Create(r.Context(), req, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         created.ID,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}

// Delete handles DELETE /questions/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.fail(w, r, apperror.BadRequest("Question with id %s does not exist.", raw))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// Search handles POST /questions/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := render.DecodeBody(r, &req); err != nil {
		h.fail(w, r, apperror.BadRequest("Request does not contain a valid JSON body."))
		return
	}

	results, err := h.svc.Search(r.Context(), req.SearchTerm)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        results,
		"total_questions":  len(results),
		"current_category": nil,
	})
}

// ByCategory handles GET /categories/{id}/questions
func (h *HTTPHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.fail(w, r, apperror.NotFound("", err))
		return
	}

	questions, err := h.svc.ByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": id,
	})
}

// Quiz handles POST /quizzes
func (h *HTTPHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := render.DecodeObject(r, &req); err != nil {
		h.fail(w, r, apperror.BadRequest(quizBodyMessage))
		return
	}

	q, err := h.svc.Quiz(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httperrors.RespondErr(w, err)
	logger := logging.FromContext(r.Context())
	event := logger.Debug()
	if status >= http.StatusUnprocessableEntity {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Msg("question request failed")
}
