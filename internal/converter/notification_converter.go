package converter

import (
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to its response DTO.
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:          notification.ID,
		Type:        notification.Type,
		Title:       notification.Title,
		Message:     notification.Message,
		IsRead:      notification.IsRead,
		Audience:    notification.Audience,
		RelatedID:   notification.RelatedID,
		RelatedType: notification.RelatedType,
		CreatedAt:   notification.CreatedAt,
	}
}

// NotificationsToResponse converts a slice of Notification entities.
func NotificationsToResponse(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *NotificationToResponse(&notifications[i]))
	}
	return responses
}
