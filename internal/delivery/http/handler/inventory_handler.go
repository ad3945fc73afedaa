package handler

import (
	"encoding/json"
	"net/http"

	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/usecase"
	"blood-bank-backend/pkg/response"
	"blood-bank-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

// List handles the public inventory listing
// @Summary List blood inventory
// @Description List all inventory records ordered by blood group
// @Tags Inventory
// @Produce json
// @Success 200 {object} response.Response
// @Router /inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventoryUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list inventory", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Inventory retrieved successfully", records)
}

// Upsert handles a partial update of one inventory record
// @Summary Upsert an inventory record
// @Description Update supplied fields of the record for the blood type, creating it if absent
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param bloodType path string true "Blood type"
// @Param request body dto.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /inventory/{bloodType} [put]
func (h *InventoryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	record, err := h.inventoryUsecase.Upsert(r.Context(), vars["bloodType"], &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update inventory", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Inventory updated successfully", record)
}

// Initialize handles seeding of the canonical blood groups
// @Summary Initialize inventory
// @Description Create a zeroed record for each of the 8 blood groups where absent; idempotent
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /inventory/initialize [post]
func (h *InventoryHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventoryUsecase.Initialize(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to initialize inventory", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Inventory initialized successfully", records)
}
