package share

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hqasem/billsplit/pkg/response"
	"github.com/hqasem/billsplit/pkg/validate"
)

// Handler handles HTTP requests for share operations
type Handler struct {
	service *Service
}

// NewHandler creates a new share handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for share endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Put("/", h.Upsert)
	r.Get("/", h.List)
	r.Delete("/{personID}/{itemID}", h.Delete)

	return r
}

// Upsert handles PUT /shares
// @Summary      Set a person's portions of an item
// @Description  Create or replace the share for a (person, item) pair; zero portions removes it
// @Tags         shares
// @Accept       json
// @Produce      json
// @Param        request body UpsertShareRequest true "Share upsert request"
// @Success      200 {object} response.APIResponse{data=ShareResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /shares [put]
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	share, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUnknownReference) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set share")
		return
	}

	response.JSON(w, http.StatusOK, share.ToResponse())
}

// List handles GET /shares
// @Summary      List all shares
// @Description  Get every (person, item, portions) assignment on the bill
// @Tags         shares
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ShareResponse}
// @Router       /shares [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shares, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list shares")
		return
	}

	shareResponses := make([]*ShareResponse, len(shares))
	for i, share := range shares {
		shareResponses[i] = share.ToResponse()
	}

	response.JSON(w, http.StatusOK, shareResponses)
}

// Delete handles DELETE /shares/{personID}/{itemID}
// @Summary      Remove a share
// @Description  Remove the share for a (person, item) pair
// @Tags         shares
// @Produce      json
// @Param        personID path int true "Person ID"
// @Param        itemID path int true "Item ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /shares/{personID}/{itemID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.ParseInt(chi.URLParam(r, "personID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	if err := h.service.Delete(r.Context(), personID, itemID); err != nil {
		response.InternalError(w, "Failed to delete share")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Share removed"})
}
