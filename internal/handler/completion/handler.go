package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/handler/auth"
	service "github.com/bulatminnakhmetov/tsunagu-backend/internal/service/completion"
)

// CompletionService интерфейс сервиса заполненности профиля
type CompletionService interface {
	GetCompletion(ctx context.Context, userID int, cohort string) (*service.Completion, error)
	PreviewCompletion(ctx context.Context, userID int, edits service.EditBuffer, cohort string) (*service.Completion, error)
	Checklist(cohort string) ([]scoring.Item, error)
}

// CompletionHandler handles profile completion requests
type CompletionHandler struct {
	completionService CompletionService
}

// NewCompletionHandler creates a new instance of CompletionHandler
func NewCompletionHandler(completionService CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// Routes mounts the authenticated endpoints on r
func (h *CompletionHandler) Routes(r chi.Router) {
	r.Get("/api/profiles/me/completion", h.GetCompletion)
	r.Post("/api/profiles/me/completion/preview", h.PreviewCompletion)
}

// PublicRoutes mounts the endpoints that need no user
func (h *CompletionHandler) PublicRoutes(r chi.Router) {
	r.Get("/api/completion/checklists/{cohort}", h.GetChecklist)
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCohort):
		http.Error(w, "Invalid cohort", http.StatusBadRequest)
	default:
		log.WithError(err).Error("completion request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to encode response")
	}
}

// @Summary      Get profile completion
// @Description  Scores the saved profile of the current user
// @Tags         completion
// @Produce      json
// @Security     BearerAuth
// @Param        cohort  query     string  false  "Force a cohort (cohort-A or cohort-B)"
// @Success      200     {object}  CompletionResponse
// @Failure      400     {string}  string  "Invalid cohort"
// @Failure      401     {string}  string  "Unauthorized"
// @Failure      500     {string}  string  "Internal server error"
// @Router       /api/profiles/me/completion [get]
func (h *CompletionHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.completionService.GetCompletion(r.Context(), userID, r.URL.Query().Get("cohort"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, ToCompletionResponse(result))
}

// @Summary      Preview profile completion
// @Description  Scores unsaved edits merged over the saved profile of the current user. Nothing is persisted.
// @Tags         completion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PreviewRequest  true  "Unsaved edits"
// @Success      200      {object}  CompletionResponse
// @Failure      400      {string}  string  "Invalid request body or cohort"
// @Failure      401      {string}  string  "Unauthorized"
// @Failure      500      {string}  string  "Internal server error"
// @Router       /api/profiles/me/completion/preview [post]
func (h *CompletionHandler) PreviewCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.completionService.PreviewCompletion(r.Context(), userID, req.EditBuffer, req.Cohort)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, ToCompletionResponse(result))
}

// @Summary      Get cohort checklist
// @Description  Lists the items a cohort is scored on, in display order
// @Tags         completion
// @Produce      json
// @Param        cohort  path      string  true  "Cohort (cohort-A or cohort-B)"
// @Success      200     {object}  ChecklistResponse
// @Failure      400     {string}  string  "Invalid cohort"
// @Router       /api/completion/checklists/{cohort} [get]
func (h *CompletionHandler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	cohort := chi.URLParam(r, "cohort")

	items, err := h.completionService.Checklist(cohort)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := ChecklistResponse{
		Cohort: cohort,
		Total:  len(items),
		Items:  make([]string, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, string(item))
	}

	writeJSON(w, resp)
}
