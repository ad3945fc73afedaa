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

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// Register handles donor registration
// @Summary Register a new donor
// @Description Register a donor; the matching inventory donor count is incremented
// @Tags Donors
// @Accept json
// @Produce json
// @Param request body dto.RegisterDonorRequest true "Register Donor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donors/register [post]
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRollNumberExists:
			response.Error(w, http.StatusBadRequest, "Roll number already registered", nil)
		default:
			response.InternalServerError(w, "Failed to register donor", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donor registered successfully", donor)
}

// List handles the paginated donor listing
// @Summary List donors
// @Description List donors ordered by registration time, newest first
// @Tags Donors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	donors, total, err := h.donorUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list donors", err.Error())
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Donors retrieved successfully", donors, paginationMeta(page, limit, total))
}

// ListByBloodType handles the blood-type filtered donor listing
// @Summary List donors by blood type
// @Description List available donors of the given blood type
// @Tags Donors
// @Produce json
// @Param type path string true "Blood type"
// @Success 200 {object} response.Response
// @Router /donors/blood-type/{type} [get]
func (h *DonorHandler) ListByBloodType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	donors, err := h.donorUsecase.ListByBloodType(r.Context(), vars["type"])
	if err != nil {
		response.InternalServerError(w, "Failed to list donors", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Donors retrieved successfully", donors)
}
