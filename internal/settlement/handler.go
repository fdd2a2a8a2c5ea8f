package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints, mounted under
// /groups/{code}/settlement
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Compute)
	r.Post("/draft", h.Draft)

	return r
}

// Compute handles GET /groups/{code}/settlement
// @Summary      Compute the settlement
// @Description  Produce per-member balances, totals, and the transfer plan for the group
// @Tags         settlement
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} response.APIResponse{data=calc.Result}
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /groups/{code}/settlement [get]
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.service.Compute(r.Context(), code)
	if err != nil {
		h.writeError(w, err, "Failed to compute settlement")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Draft handles POST /groups/{code}/settlement/draft
// @Summary      Draft a settlement message
// @Description  Generate a shareable message listing who pays whom
// @Tags         settlement
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} response.APIResponse{data=DraftResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /groups/{code}/settlement/draft [post]
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	message, err := h.service.Draft(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNothingToSettle) {
			response.BadRequest(w, err.Error())
			return
		}
		h.writeError(w, err, "Failed to draft settlement message")
		return
	}

	response.JSON(w, http.StatusOK, &DraftResponse{Message: message})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *calc.ValidationError
	switch {
	case errors.Is(err, group.ErrGroupNotFound):
		response.NotFound(w, err.Error())
	case errors.As(err, &validationErr):
		response.ValidationFailed(w, validationErr.Code, validationErr.Message, validationErr.MemberIDs)
	default:
		response.InternalError(w, fallback)
	}
}
