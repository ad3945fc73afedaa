package handler

import (
	"fmt"
	"io"
	"net/http"

	"blood-bank-backend/internal/usecase"
	"blood-bank-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FileHandler struct {
	requestUsecase usecase.RequestUsecase
}

func NewFileHandler(requestUsecase usecase.RequestUsecase) *FileHandler {
	return &FileHandler{requestUsecase: requestUsecase}
}

// Download streams a stored attachment
// @Summary Download an attachment
// @Description Stream a stored hospital report with its original content type
// @Tags Files
// @Security BearerAuth
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /files/{id} [get]
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid file ID", nil)
		return
	}

	record, reader, err := h.requestUsecase.GetFile(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrFileNotFound:
			response.NotFound(w, "File not found")
		default:
			response.InternalServerError(w, "Failed to retrieve file", err.Error())
		}
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", record.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", record.FileName))
	io.Copy(w, reader)
}
