package category

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

// HTTPHandler exposes the category endpoints.
type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /categories
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListNonEmpty(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": Labels(categories),
	})
}

// Create handles POST /categories
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := render.DecodeBody(r, &req); err != nil {
		h.fail(w, r, apperror.BadRequest("Request does not contain a valid JSON body."))
		return
	}

	created, all, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"created":          created.ID,
		"categories":       all,
		"total_categories": len(all),
	})
}

// Delete handles DELETE /categories/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.fail(w, r, apperror.BadRequest("Category with id %s does not exist.", raw))
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

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httperrors.RespondErr(w, err)
	logger := logging.FromContext(r.Context())
	event := logger.Debug()
	if status >= http.StatusUnprocessableEntity {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Msg("category request failed")
}
