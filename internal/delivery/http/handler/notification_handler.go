package handler

import (
	"net/http"

	"blood-bank-backend/internal/delivery/http/middleware"
	"blood-bank-backend/internal/usecase"
	"blood-bank-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// List handles the role-filtered notification listing
// @Summary List notifications
// @Description List notifications for the principal's audience, newest first
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page, limit := parsePagination(r)

	notifications, total, err := h.notificationUsecase.List(r.Context(), role, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications", err.Error())
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notifications retrieved successfully", notifications, paginationMeta(page, limit, total))
}

// MarkRead handles flipping a notification's read flag
// @Summary Mark notification read
// @Description Set the read flag on a notification; idempotent
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.MarkRead(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification read", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", notification)
}
