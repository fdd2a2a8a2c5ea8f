package split

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/pkg/response"
)

// Handler handles HTTP requests for custom split operations
type Handler struct {
	service *Service
}

// NewHandler creates a new split handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for custom split endpoints, mounted under
// /groups/{code}/splits
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /groups/{code}/splits
// @Summary      Add a custom split
// @Description  Record a side expense split equally among chosen members and guests
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body CreateSplitRequest true "Split creation request"
// @Success      201 {object} response.APIResponse{data=SplitResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/splits [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req CreateSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	s, err := h.service.Create(r.Context(), code, &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrPayerNotInGroup),
			errors.Is(err, ErrTooFewParticipants),
			errors.Is(err, ErrInvalidParticipant):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create split")
		}
		return
	}

	response.JSON(w, http.StatusCreated, s.ToResponse())
}

// List handles GET /groups/{code}/splits
// @Summary      List custom splits
// @Tags         splits
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} response.APIResponse{data=[]SplitResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/splits [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	splits, err := h.service.ListByGroup(r.Context(), code)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list splits")
		return
	}

	splitResponses := make([]*SplitResponse, len(splits))
	for i, s := range splits {
		splitResponses[i] = s.ToResponse()
	}

	response.JSON(w, http.StatusOK, splitResponses)
}

// Delete handles DELETE /groups/{code}/splits/{id}
// @Summary      Remove a custom split
// @Tags         splits
// @Produce      json
// @Param        code path string true "Room code"
// @Param        id path int true "Split ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/splits/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid split ID")
		return
	}

	if err := h.service.Delete(r.Context(), code, id); err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrSplitNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete split")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Split deleted successfully"})
}
