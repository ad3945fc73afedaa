package usecase

import (
	"context"
	"errors"

	"blood-bank-backend/internal/converter"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	List(ctx context.Context, role string, page, limit int) ([]dto.NotificationResponse, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// audiencesForRole derives the audiences visible to a principal: admins
// see admin-targeted notifications, everyone else sees donor-targeted
// ones, and "all" is always included.
func audiencesForRole(role string) []string {
	if role == entity.RoleAdmin {
		return []string{entity.AudienceAll, entity.AudienceAdmins}
	}
	return []string{entity.AudienceAll, entity.AudienceDonors}
}

func (u *notificationUsecase) List(ctx context.Context, role string, page, limit int) ([]dto.NotificationResponse, int64, error) {
	offset := (page - 1) * limit

	notifications, total, err := u.notificationRepo.FindByAudiences(ctx, audiencesForRole(role), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, 0, err
	}

	return converter.NotificationsToResponse(notifications), total, nil
}

// MarkRead flips the read flag. Idempotent: marking an already-read
// notification succeeds.
func (u *notificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := u.notificationRepo.Update(ctx, notification); err != nil {
			u.log.Warnf("Failed to mark notification read: %+v", err)
			return nil, err
		}
	}

	return converter.NotificationToResponse(notification), nil
}
