package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// In-memory fakes behind the domain repository interfaces. They mimic the
// Postgres behaviors the usecases depend on, including unique-violation
// errors carrying the constraint name.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

type fakeDonorRepo struct {
	donors []*entity.Donor
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{}
}

func (f *fakeDonorRepo) Create(_ context.Context, donor *entity.Donor) error {
	for _, existing := range f.donors {
		if existing.RollNumber == donor.RollNumber {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_donors_roll_number"}
		}
	}
	if donor.ID == uuid.Nil {
		donor.ID = uuid.New()
	}
	donor.CreatedAt = time.Now()
	f.donors = append(f.donors, donor)
	return nil
}

func (f *fakeDonorRepo) FindAll(_ context.Context, limit, offset int) ([]entity.Donor, int64, error) {
	// Newest first: fakes append in insertion order, so walk backwards.
	var page []entity.Donor
	for i := len(f.donors) - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, *f.donors[i])
	}
	return page, int64(len(f.donors)), nil
}

func (f *fakeDonorRepo) FindAvailableByBloodGroup(_ context.Context, bloodGroup string) ([]entity.Donor, error) {
	var matches []entity.Donor
	for _, donor := range f.donors {
		if donor.BloodGroup == bloodGroup && donor.IsAvailable != nil && *donor.IsAvailable {
			matches = append(matches, *donor)
		}
	}
	return matches, nil
}

func (f *fakeDonorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.donors)), nil
}

type fakeInventoryRepo struct {
	records map[string]*entity.BloodInventory
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: make(map[string]*entity.BloodInventory)}
}

func (f *fakeInventoryRepo) Create(_ context.Context, record *entity.BloodInventory) error {
	if _, ok := f.records[record.BloodGroup]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_blood_inventory_blood_group"}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.LastUpdated = time.Now()
	f.records[record.BloodGroup] = record
	return nil
}

func (f *fakeInventoryRepo) CreateIfAbsent(_ context.Context, record *entity.BloodInventory) error {
	if _, ok := f.records[record.BloodGroup]; ok {
		return nil
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.LastUpdated = time.Now()
	f.records[record.BloodGroup] = record
	return nil
}

func (f *fakeInventoryRepo) FindAll(_ context.Context) ([]entity.BloodInventory, error) {
	var records []entity.BloodInventory
	for _, bloodGroup := range entity.BloodGroups {
		if record, ok := f.records[bloodGroup]; ok {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (f *fakeInventoryRepo) FindByBloodGroup(_ context.Context, bloodGroup string) (*entity.BloodInventory, error) {
	record, ok := f.records[bloodGroup]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (f *fakeInventoryRepo) UpdateFields(_ context.Context, bloodGroup string, fields map[string]interface{}) (int64, error) {
	record, ok := f.records[bloodGroup]
	if !ok {
		return 0, nil
	}
	if units, ok := fields["units_available"].(int); ok {
		record.UnitsAvailable = units
	}
	if count, ok := fields["donors_count"].(int); ok {
		record.DonorsCount = count
	}
	if stamp, ok := fields["last_updated"].(time.Time); ok {
		record.LastUpdated = stamp
	}
	return 1, nil
}

func (f *fakeInventoryRepo) IncrementDonors(_ context.Context, bloodGroup string) error {
	if record, ok := f.records[bloodGroup]; ok {
		record.DonorsCount++
		record.LastUpdated = time.Now()
		return nil
	}
	f.records[bloodGroup] = &entity.BloodInventory{
		ID:                uuid.New(),
		BloodGroup:        bloodGroup,
		DonorsCount:       1,
		LowStockThreshold: entity.DefaultLowStockThreshold,
		LastUpdated:       time.Now(),
	}
	return nil
}

func (f *fakeInventoryRepo) DecrementUnits(_ context.Context, bloodGroup string, units int) error {
	// Mirrors the SQL UPDATE: a missing record is a silent no-op.
	if record, ok := f.records[bloodGroup]; ok {
		record.UnitsAvailable -= units
		record.LastUpdated = time.Now()
	}
	return nil
}

func (f *fakeInventoryRepo) FindBelowThreshold(_ context.Context) ([]entity.BloodInventory, error) {
	var records []entity.BloodInventory
	for _, bloodGroup := range entity.BloodGroups {
		if record, ok := f.records[bloodGroup]; ok && record.UnitsAvailable < record.LowStockThreshold {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (f *fakeInventoryRepo) CountBelowThreshold(ctx context.Context) (int64, error) {
	records, _ := f.FindBelowThreshold(ctx)
	return int64(len(records)), nil
}

type fakeRequestRepo struct {
	requests []*entity.BloodRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{}
}

func (f *fakeRequestRepo) Create(_ context.Context, request *entity.BloodRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRequestRepo) FindAll(_ context.Context, limit, offset int, status string) ([]entity.BloodRequest, int64, error) {
	var filtered []*entity.BloodRequest
	for _, request := range f.requests {
		if status == "" || request.Status == status {
			filtered = append(filtered, request)
		}
	}
	var page []entity.BloodRequest
	for i := len(filtered) - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, *filtered[i])
	}
	return page, int64(len(filtered)), nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	for _, request := range f.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, request *entity.BloodRequest) error {
	for i, existing := range f.requests {
		if existing.ID == request.ID {
			request.UpdatedAt = time.Now()
			f.requests[i] = request
			return nil
		}
	}
	return fmt.Errorf("request %s not found", request.ID)
}

func (f *fakeRequestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}

func (f *fakeRequestRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var total int64
	for _, request := range f.requests {
		if request.Status == status {
			total++
		}
	}
	return total, nil
}

func (f *fakeRequestRepo) CountOpenEmergencies(_ context.Context) (int64, error) {
	var total int64
	for _, request := range f.requests {
		if request.IsEmergency && (request.Status == entity.RequestStatusPending || request.Status == entity.RequestStatusApproved) {
			total++
		}
	}
	return total, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) FindByAudiences(_ context.Context, audiences []string, limit, offset int) ([]entity.Notification, int64, error) {
	allowed := make(map[string]bool, len(audiences))
	for _, audience := range audiences {
		allowed[audience] = true
	}
	var filtered []*entity.Notification
	for _, notification := range f.notifications {
		if allowed[notification.Audience] {
			filtered = append(filtered, notification)
		}
	}
	var page []entity.Notification
	for i := len(filtered) - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, *filtered[i])
	}
	return page, int64(len(filtered)), nil
}

func (f *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	for _, notification := range f.notifications {
		if notification.ID == id {
			return notification, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) Update(_ context.Context, notification *entity.Notification) error {
	for i, existing := range f.notifications {
		if existing.ID == notification.ID {
			f.notifications[i] = notification
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", notification.ID)
}

// byType returns the stored notifications of the given type.
func (f *fakeNotificationRepo) byType(notificationType string) []*entity.Notification {
	var matches []*entity.Notification
	for _, notification := range f.notifications {
		if notification.Type == notificationType {
			matches = append(matches, notification)
		}
	}
	return matches
}

type fakeFileRepo struct {
	records map[uuid.UUID]*entity.FileRecord
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{records: make(map[uuid.UUID]*entity.FileRecord)}
}

func (f *fakeFileRepo) Create(_ context.Context, record *entity.FileRecord) error {
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	return nil
}

func (f *fakeFileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FileRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return record, nil
}

type fakeFileStore struct {
	objects map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{objects: make(map[string][]byte)}
}

func (f *fakeFileStore) Put(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) error {
	payload, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[objectKey] = payload
	return nil
}

func (f *fakeFileStore) Get(_ context.Context, objectKey string) (io.ReadCloser, error) {
	payload, ok := f.objects[objectKey]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(payload)), nil
}
