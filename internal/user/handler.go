package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akaul/fairsplit/pkg/middleware"
	"github.com/akaul/fairsplit/pkg/response"
)

// Handler handles HTTP requests for user profile operations
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for user endpoints, mounted under /users
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me/recent", h.Recent)

	return r
}

// Recent handles GET /users/me/recent
// @Summary      Get the caller's most recent group
// @Description  Return the group the caller last created or joined
// @Tags         users
// @Produce      json
// @Param        X-User-ID header string false "Caller identity"
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /users/me/recent [get]
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	p, err := h.service.Recent(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get recent group")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}
