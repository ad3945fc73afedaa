package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"blood-bank-backend/internal/converter"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"
	"blood-bank-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRequestNotFound     = errors.New("blood request not found")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileTooLarge        = errors.New("attachment exceeds the 5 MB limit")
	ErrUnsupportedFileType = errors.New("attachment must be an image or a PDF")
)

// maxAttachmentSize caps hospital report uploads at 5 MB.
const maxAttachmentSize = 5 << 20

// UploadedFile carries an attachment received with a request submission.
type UploadedFile struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type RequestUsecase interface {
	Submit(ctx context.Context, req *dto.CreateBloodRequest, upload *UploadedFile) (*dto.BloodRequestResponse, error)
	List(ctx context.Context, page, limit int, status string) ([]dto.BloodRequestResponse, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.BloodRequestResponse, error)
	GetFile(ctx context.Context, id uuid.UUID) (*entity.FileRecord, io.ReadCloser, error)
}

type requestUsecase struct {
	log              *logrus.Logger
	requestRepo      repository.BloodRequestRepository
	inventoryRepo    repository.InventoryRepository
	notificationRepo repository.NotificationRepository
	fileRepo         repository.FileRepository
	fileStore        repository.FileStore
	stockAlerts      *service.StockAlertService
}

func NewRequestUsecase(
	log *logrus.Logger,
	requestRepo repository.BloodRequestRepository,
	inventoryRepo repository.InventoryRepository,
	notificationRepo repository.NotificationRepository,
	fileRepo repository.FileRepository,
	fileStore repository.FileStore,
	stockAlerts *service.StockAlertService,
) RequestUsecase {
	return &requestUsecase{
		log:              log,
		requestRepo:      requestRepo,
		inventoryRepo:    inventoryRepo,
		notificationRepo: notificationRepo,
		fileRepo:         fileRepo,
		fileStore:        fileStore,
		stockAlerts:      stockAlerts,
	}
}

func (u *requestUsecase) Submit(ctx context.Context, req *dto.CreateBloodRequest, upload *UploadedFile) (*dto.BloodRequestResponse, error) {
	var reportFileID *uuid.UUID

	if upload != nil {
		record, err := u.storeAttachment(ctx, upload)
		if err != nil {
			return nil, err
		}
		reportFileID = &record.ID
	}

	request := &entity.BloodRequest{
		PatientName:    req.PatientName,
		PatientAge:     req.PatientAge,
		PatientGender:  req.PatientGender,
		BloodGroup:     req.BloodGroup,
		UnitsRequired:  req.UnitsRequired,
		HospitalName:   req.HospitalName,
		Reason:         req.Reason,
		RequesterRoll:  req.RequesterRoll,
		RequesterEmail: req.RequesterEmail,
		RequesterPhone: req.RequesterPhone,
		IsEmergency:    req.IsEmergency,
		ReportFileID:   reportFileID,
		Status:         entity.RequestStatusPending,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		u.log.Warnf("Failed to create blood request: %+v", err)
		return nil, err
	}

	if request.IsEmergency {
		notification := &entity.Notification{
			Type:        entity.NotificationEmergencyRequest,
			Title:       fmt.Sprintf("Emergency: %s blood needed", request.BloodGroup),
			Message:     fmt.Sprintf("%d unit(s) of %s needed urgently at %s", request.UnitsRequired, request.BloodGroup, request.HospitalName),
			Audience:    entity.AudienceAll,
			RelatedID:   &request.ID,
			RelatedType: "blood_request",
		}
		if err := u.notificationRepo.Create(ctx, notification); err != nil {
			u.log.Warnf("Failed to create emergency notification: %+v", err)
		}
	}

	return converter.BloodRequestToResponse(request), nil
}

// storeAttachment validates the upload, writes the payload to the blob
// store and persists the metadata row.
func (u *requestUsecase) storeAttachment(ctx context.Context, upload *UploadedFile) (*entity.FileRecord, error) {
	if upload.Size > maxAttachmentSize {
		return nil, ErrFileTooLarge
	}
	if !strings.HasPrefix(upload.ContentType, "image/") && upload.ContentType != "application/pdf" {
		return nil, ErrUnsupportedFileType
	}

	record := &entity.FileRecord{
		ID:          uuid.New(),
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	}
	record.ObjectKey = fmt.Sprintf("reports/%s", record.ID)

	if err := u.fileStore.Put(ctx, record.ObjectKey, upload.Reader, upload.Size, upload.ContentType); err != nil {
		u.log.Warnf("Failed to store attachment: %+v", err)
		return nil, err
	}

	if err := u.fileRepo.Create(ctx, record); err != nil {
		u.log.Warnf("Failed to persist file record: %+v", err)
		return nil, err
	}

	return record, nil
}

func (u *requestUsecase) List(ctx context.Context, page, limit int, status string) ([]dto.BloodRequestResponse, int64, error) {
	// "all" and an absent filter behave the same.
	if status == "all" {
		status = ""
	}
	offset := (page - 1) * limit

	requests, total, err := u.requestRepo.FindAll(ctx, limit, offset, status)
	if err != nil {
		u.log.Warnf("Failed to list blood requests: %+v", err)
		return nil, 0, err
	}

	return converter.BloodRequestsToResponse(requests), total, nil
}

// UpdateStatus transitions a request to any caller-supplied status. On
// "fulfilled" the matching inventory is decremented by the required units
// and the low-stock check runs.
func (u *requestUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.BloodRequestResponse, error) {
	request, err := u.requestRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find blood request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	request.Status = req.Status
	if req.AdminNotes != "" {
		request.AdminNotes = req.AdminNotes
	}

	if err := u.requestRepo.Update(ctx, request); err != nil {
		u.log.Warnf("Failed to update blood request: %+v", err)
		return nil, err
	}

	if request.Status == entity.RequestStatusFulfilled {
		if err := u.inventoryRepo.DecrementUnits(ctx, request.BloodGroup, request.UnitsRequired); err != nil {
			u.log.Warnf("Failed to decrement inventory for %s: %+v", request.BloodGroup, err)
		}
		if err := u.stockAlerts.CheckLowStock(ctx); err != nil {
			u.log.Warnf("Low stock check failed after fulfillment: %+v", err)
		}
	}

	return converter.BloodRequestToResponse(request), nil
}

func (u *requestUsecase) GetFile(ctx context.Context, id uuid.UUID) (*entity.FileRecord, io.ReadCloser, error) {
	record, err := u.fileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find file record: %+v", err)
		return nil, nil, err
	}
	if record == nil {
		return nil, nil, ErrFileNotFound
	}

	reader, err := u.fileStore.Get(ctx, record.ObjectKey)
	if err != nil {
		u.log.Warnf("Failed to fetch attachment %s: %+v", record.ObjectKey, err)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}

	return record, reader, nil
}
