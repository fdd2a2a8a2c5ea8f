package member

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/pkg/response"
)

// Handler handles HTTP requests for member operations
type Handler struct {
	service *Service
}

// NewHandler creates a new member handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for member endpoints, mounted under
// /groups/{code}/members
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/breakdown", h.Breakdown)
	r.Post("/{id}/extract", h.SmartAdd)

	return r
}

// Create handles POST /groups/{code}/members
// @Summary      Add a member
// @Description  Add a participant to the group. Name and expenses may be filled in later.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body CreateMemberRequest true "Member creation request"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.Add(r.Context(), code, &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidDaysAbsent):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create member")
		}
		return
	}

	response.JSON(w, http.StatusCreated, m.ToResponse())
}

// List handles GET /groups/{code}/members
// @Summary      List members
// @Tags         members
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	members, err := h.service.ListByGroup(r.Context(), code)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list members")
		return
	}

	memberResponses := make([]*MemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, memberResponses)
}

// Update handles PUT /groups/{code}/members/{id}
// @Summary      Update a member
// @Description  Update member fields. Renaming a member to match a guest reference merges that guest into the member across all custom splits.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        id path int true "Member ID"
// @Param        request body UpdateMemberRequest true "Member update request"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.Update(r.Context(), code, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidDaysAbsent):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update member")
		}
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// Delete handles DELETE /groups/{code}/members/{id}
// @Summary      Remove a member
// @Tags         members
// @Produce      json
// @Param        code path string true "Room code"
// @Param        id path int true "Member ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	if err := h.service.Remove(r.Context(), code, id); err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete member")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}

// Breakdown handles GET /groups/{code}/members/{id}/breakdown
// @Summary      Show a member's parsed expenses
// @Description  Parse both expense inputs into individual amounts and totals
// @Tags         members
// @Produce      json
// @Param        code path string true "Room code"
// @Param        id path int true "Member ID"
// @Success      200 {object} response.APIResponse{data=BreakdownResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members/{id}/breakdown [get]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	m, err := h.service.GetByID(r.Context(), code, id)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to get member")
		}
		return
	}

	response.JSON(w, http.StatusOK, m.ToBreakdown())
}

// SmartAdd handles POST /groups/{code}/members/{id}/extract
// @Summary      Extract expenses from text
// @Description  Pull numeric amounts out of free-form text and append them to the member's expenses
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        id path int true "Member ID"
// @Param        request body SmartAddRequest true "Free-form expense text"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{code}/members/{id}/extract [post]
func (h *Handler) SmartAdd(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req SmartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.SmartAdd(r.Context(), code, id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNoAmountsFound), errors.Is(err, ErrExtractionFailed):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to extract expenses")
		}
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}
