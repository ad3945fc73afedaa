package usecase

import (
	"context"
	"testing"

	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture() (InventoryUsecase, *fakeInventoryRepo, *fakeNotificationRepo) {
	inventoryRepo := newFakeInventoryRepo()
	notificationRepo := newFakeNotificationRepo()
	stockAlerts := service.NewStockAlertService(testLogger(), inventoryRepo, notificationRepo)
	return NewInventoryUsecase(testLogger(), inventoryRepo, stockAlerts), inventoryRepo, notificationRepo
}

func TestInventoryInitialize(t *testing.T) {
	uc, _, _ := newInventoryFixture()

	records, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	require.Len(t, records, len(entity.BloodGroups))

	for i, record := range records {
		assert.Equal(t, entity.BloodGroups[i], record.BloodGroup)
		assert.Equal(t, 0, record.UnitsAvailable)
		assert.Equal(t, 0, record.DonorsCount)
		assert.Equal(t, entity.DefaultLowStockThreshold, record.LowStockThreshold)
	}
}

func TestInventoryInitializeIsIdempotent(t *testing.T) {
	uc, _, _ := newInventoryFixture()

	units := 42
	_, err := uc.Upsert(context.Background(), "O+", &dto.UpdateInventoryRequest{UnitsAvailable: &units})
	require.NoError(t, err)

	records, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	require.Len(t, records, len(entity.BloodGroups))

	for _, record := range records {
		if record.BloodGroup == "O+" {
			assert.Equal(t, 42, record.UnitsAvailable, "existing records survive initialize")
		}
	}
}

func TestInventoryUpsertCreatesRecord(t *testing.T) {
	uc, inventoryRepo, _ := newInventoryFixture()

	units := 15
	record, err := uc.Upsert(context.Background(), "A-", &dto.UpdateInventoryRequest{UnitsAvailable: &units})
	require.NoError(t, err)
	assert.Equal(t, "A-", record.BloodGroup)
	assert.Equal(t, 15, record.UnitsAvailable)
	assert.Equal(t, entity.DefaultLowStockThreshold, record.LowStockThreshold)

	stored, err := inventoryRepo.FindByBloodGroup(context.Background(), "A-")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 15, stored.UnitsAvailable)
}

func TestInventoryUpsertPartialUpdate(t *testing.T) {
	uc, _, _ := newInventoryFixture()

	units := 20
	donors := 7
	_, err := uc.Upsert(context.Background(), "B+", &dto.UpdateInventoryRequest{
		UnitsAvailable: &units,
		DonorsCount:    &donors,
	})
	require.NoError(t, err)

	// Only donors_count in the payload; units must be untouched.
	donors = 9
	record, err := uc.Upsert(context.Background(), "B+", &dto.UpdateInventoryRequest{DonorsCount: &donors})
	require.NoError(t, err)
	assert.Equal(t, 20, record.UnitsAvailable)
	assert.Equal(t, 9, record.DonorsCount)
}

func TestInventoryUpsertEmitsLowStockAlert(t *testing.T) {
	uc, _, notificationRepo := newInventoryFixture()

	units := 3
	_, err := uc.Upsert(context.Background(), "AB+", &dto.UpdateInventoryRequest{UnitsAvailable: &units})
	require.NoError(t, err)

	alerts := notificationRepo.byType(entity.NotificationLowStock)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AudienceAdmins, alerts[0].Audience)
	assert.Contains(t, alerts[0].Title, "AB+")

	// No deduplication: every update of a still-low record alerts again.
	units = 2
	_, err = uc.Upsert(context.Background(), "AB+", &dto.UpdateInventoryRequest{UnitsAvailable: &units})
	require.NoError(t, err)

	alerts = notificationRepo.byType(entity.NotificationLowStock)
	assert.Len(t, alerts, 2)
}

func TestInventoryUpsertAboveThresholdNoAlert(t *testing.T) {
	uc, _, notificationRepo := newInventoryFixture()

	units := 50
	_, err := uc.Upsert(context.Background(), "O-", &dto.UpdateInventoryRequest{UnitsAvailable: &units})
	require.NoError(t, err)

	assert.Empty(t, notificationRepo.byType(entity.NotificationLowStock))
}

func TestInventoryList(t *testing.T) {
	uc, _, _ := newInventoryFixture()

	records, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = uc.Initialize(context.Background())
	require.NoError(t, err)

	records, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, len(entity.BloodGroups))
}
