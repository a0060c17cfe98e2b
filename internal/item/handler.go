package item

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hqasem/billsplit/pkg/response"
	"github.com/hqasem/billsplit/pkg/validate"
)

// Handler handles HTTP requests for item operations
type Handler struct {
	service *Service
}

// NewHandler creates a new item handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for item endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /items
// @Summary      Add an item to the bill
// @Description  Add a new priced line with a unit price and quantity
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body CreateItemRequest true "Item creation request"
// @Success      201 {object} response.APIResponse{data=ItemResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /items [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create item")
		return
	}

	response.JSON(w, http.StatusCreated, item.ToResponse())
}

// GetByID handles GET /items/{id}
// @Summary      Get item by ID
// @Description  Get a single item by its ID
// @Tags         items
// @Produce      json
// @Param        id path int true "Item ID"
// @Success      200 {object} response.APIResponse{data=ItemResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get item")
		return
	}

	response.JSON(w, http.StatusOK, item.ToResponse())
}

// List handles GET /items
// @Summary      List all items
// @Description  Get every priced line on the bill
// @Tags         items
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Router       /items [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list items")
		return
	}

	itemResponses := make([]*ItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = item.ToResponse()
	}

	response.JSON(w, http.StatusOK, itemResponses)
}

// Update handles PUT /items/{id}
// @Summary      Update an item
// @Description  Update an item's name, unit price or quantity
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path int true "Item ID"
// @Param        request body UpdateItemRequest true "Item update request"
// @Success      200 {object} response.APIResponse{data=ItemResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update item")
		return
	}

	response.JSON(w, http.StatusOK, item.ToResponse())
}

// Delete handles DELETE /items/{id}
// @Summary      Remove an item
// @Description  Remove an item from the bill along with every share that references it
// @Tags         items
// @Produce      json
// @Param        id path int true "Item ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete item")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Item removed from the bill"})
}
