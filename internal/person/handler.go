package person

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hqasem/billsplit/pkg/response"
	"github.com/hqasem/billsplit/pkg/validate"
)

// Handler handles HTTP requests for person operations
type Handler struct {
	service *Service
}

// NewHandler creates a new person handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for person endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /people
// @Summary      Add a person to the bill
// @Description  Add a new person with a display name and an optional amount already paid
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        request body CreatePersonRequest true "Person creation request"
// @Success      201 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /people [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	person, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create person")
		return
	}

	response.JSON(w, http.StatusCreated, person.ToResponse())
}

// GetByID handles GET /people/{id}
// @Summary      Get person by ID
// @Description  Get a single person by their ID
// @Tags         people
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	person, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get person")
		return
	}

	response.JSON(w, http.StatusOK, person.ToResponse())
}

// List handles GET /people
// @Summary      List everyone on the bill
// @Description  Get all people in the order the allocator iterates them
// @Tags         people
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]PersonResponse}
// @Router       /people [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list people")
		return
	}

	personResponses := make([]*PersonResponse, len(people))
	for i, person := range people {
		personResponses[i] = person.ToResponse()
	}

	response.JSON(w, http.StatusOK, personResponses)
}

// Update handles PUT /people/{id}
// @Summary      Update a person
// @Description  Update a person's name or amount paid
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        id path int true "Person ID"
// @Param        request body UpdatePersonRequest true "Person update request"
// @Success      200 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	var req UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	person, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update person")
		return
	}

	response.JSON(w, http.StatusOK, person.ToResponse())
}

// Delete handles DELETE /people/{id}
// @Summary      Remove a person
// @Description  Remove a person from the bill along with all of their shares
// @Tags         people
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete person")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Person removed from the bill"})
}
