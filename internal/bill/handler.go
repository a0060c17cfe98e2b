package bill

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hqasem/billsplit/pkg/response"
	"github.com/hqasem/billsplit/pkg/validate"
)

// Handler handles HTTP requests for the derived bill views
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/dues", h.Dues)
	r.Get("/settlements", h.Settlements)
	r.Get("/service-charge", h.GetServiceCharge)
	r.Put("/service-charge", h.SetServiceCharge)

	return r
}

// Dues handles GET /bill/dues
// @Summary      Per-person dues
// @Description  Compute each person's share of the bill; the amounts always sum to the grand total
// @Tags         bill
// @Produce      json
// @Success      200 {object} response.APIResponse{data=DuesResponse}
// @Router       /bill/dues [get]
func (h *Handler) Dues(w http.ResponseWriter, r *http.Request) {
	dues, err := h.service.Dues(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute dues")
		return
	}

	response.JSON(w, http.StatusOK, dues)
}

// Settlements handles GET /bill/settlements
// @Summary      Settlement plan
// @Description  Compute the minimal payments that clear everyone's balance, given amounts already paid
// @Tags         bill
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SettlementsResponse}
// @Router       /bill/settlements [get]
func (h *Handler) Settlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.service.Settlements(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute settlements")
		return
	}

	response.JSON(w, http.StatusOK, settlements)
}

// GetServiceCharge handles GET /bill/service-charge
// @Summary      Get the service charge
// @Description  Get the current service-charge percentage
// @Tags         bill
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ServiceChargeResponse}
// @Router       /bill/service-charge [get]
func (h *Handler) GetServiceCharge(w http.ResponseWriter, r *http.Request) {
	percent, err := h.service.GetServiceCharge(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to get service charge")
		return
	}

	response.JSON(w, http.StatusOK, &ServiceChargeResponse{Percent: percent})
}

// SetServiceCharge handles PUT /bill/service-charge
// @Summary      Set the service charge
// @Description  Replace the service-charge percentage applied to the item subtotal
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        request body ServiceChargeRequest true "Service charge request"
// @Success      200 {object} response.APIResponse{data=ServiceChargeResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bill/service-charge [put]
func (h *Handler) SetServiceCharge(w http.ResponseWriter, r *http.Request) {
	var req ServiceChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	if err := h.service.SetServiceCharge(r.Context(), req.Percent); err != nil {
		response.InternalError(w, "Failed to set service charge")
		return
	}

	response.JSON(w, http.StatusOK, &ServiceChargeResponse{Percent: req.Percent})
}
