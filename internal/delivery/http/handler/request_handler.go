package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/usecase"
	"blood-bank-backend/pkg/response"
	"blood-bank-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// reportFileField is the multipart form field carrying the attachment.
const reportFileField = "hospitalReports"

type RequestHandler struct {
	requestUsecase usecase.RequestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.RequestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// Submit handles blood request submission
// @Summary Submit a blood request
// @Description Submit a blood request with an optional hospital report attachment
// @Tags Requests
// @Accept multipart/form-data
// @Produce json
// @Param hospitalReports formData file false "Hospital report (image or PDF, max 5 MB)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	// Numeric fields are coerced from their text form values; out-of-range
	// values are accepted as-is.
	age, _ := strconv.Atoi(r.FormValue("patientAge"))
	units, _ := strconv.Atoi(r.FormValue("unitsRequired"))

	req := dto.CreateBloodRequest{
		PatientName:    r.FormValue("patientName"),
		PatientAge:     age,
		PatientGender:  r.FormValue("patientGender"),
		BloodGroup:     r.FormValue("bloodGroup"),
		UnitsRequired:  units,
		HospitalName:   r.FormValue("hospitalName"),
		Reason:         r.FormValue("reason"),
		RequesterRoll:  r.FormValue("requesterRoll"),
		RequesterEmail: r.FormValue("requesterEmail"),
		RequesterPhone: r.FormValue("requesterPhone"),
		IsEmergency:    r.FormValue("isEmergency") == "true",
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var upload *usecase.UploadedFile
	file, header, err := r.FormFile(reportFileField)
	switch {
	case err == nil:
		defer file.Close()
		upload = &usecase.UploadedFile{
			Reader:      file,
			Size:        header.Size,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}
	case errors.Is(err, http.ErrMissingFile):
		// Attachment is optional.
	default:
		response.Error(w, http.StatusBadRequest, "Invalid file upload", nil)
		return
	}

	request, err := h.requestUsecase.Submit(r.Context(), &req, upload)
	if err != nil {
		switch err {
		case usecase.ErrFileTooLarge, usecase.ErrUnsupportedFileType:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to submit blood request", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood request submitted successfully", request)
}

// List handles the paginated, filtered request listing
// @Summary List blood requests
// @Description List blood requests, newest first, optionally filtered by status
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Status filter"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := r.URL.Query().Get("status")

	requests, total, err := h.requestUsecase.List(r.Context(), page, limit, status)
	if err != nil {
		response.InternalServerError(w, "Failed to list blood requests", err.Error())
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Blood requests retrieved successfully", requests, paginationMeta(page, limit, total))
}

// UpdateStatus handles a request status transition
// @Summary Update request status
// @Description Transition a request to a new status; "fulfilled" decrements inventory
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.requestUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to update request status", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Request status updated successfully", request)
}
