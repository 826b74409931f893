package services

import (
	"testing"
	"time"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMaintenanceFixture(t *testing.T) (MaintenanceOrderServiceInterface, *fakeEquipmentRepo, *fakeMaintenanceOrderRepo, uuid.UUID) {
	t.Helper()
	logger := zap.NewNop()
	equipmentRepo := newFakeEquipmentRepo()
	orderRepo := newFakeMaintenanceOrderRepo()
	svc := NewMaintenanceOrderService(&fakeTxManager{}, orderRepo, equipmentRepo, eventbus.New(logger), logger)
	return svc, equipmentRepo, orderRepo, uuid.New()
}

func createOrder(t *testing.T, svc MaintenanceOrderServiceInterface, orgID uuid.UUID, equipmentID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := testContext(orgID, uuid.New())
	res, err := svc.CreateMaintenanceOrder(ctx, dto.CreateMaintenanceOrderDTO{
		EquipmentID: equipmentID.String(),
		Type:        "corrective",
	})
	require.NoError(t, err)
	return uuid.MustParse(res.ID)
}

func closeOrder(t *testing.T, svc MaintenanceOrderServiceInterface, orgID, orderID uuid.UUID) {
	t.Helper()
	ctx := testContext(orgID, uuid.New())
	_, err := svc.UpdateMaintenanceOrder(ctx, orderID, dto.UpdateMaintenanceOrderDTO{
		Status: utils.StringPtr("closed"),
	})
	require.NoError(t, err)
}

func TestCreateMaintenanceOrder_SetsInMaintenance(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	ctx := testContext(orgID, uuid.New())
	res, err := svc.CreateMaintenanceOrder(ctx, dto.CreateMaintenanceOrderDTO{
		EquipmentID: equipment.ID.String(),
		Type:        "preventive",
	})
	require.NoError(t, err)

	assert.Equal(t, "open", res.Status)
	assert.Nil(t, res.ClosedAt)
	assert.Equal(t, entities.EquipmentStatusInMaintenance, equipmentRepo.items[equipment.ID].Status)
}

func TestCreateMaintenanceOrder_KeepsLocation(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	postID := uuid.New()
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusInUse,
		entities.Location{Type: entities.LocationTypePost, RefID: &postID})

	createOrder(t, svc, orgID, equipment.ID)

	updated := equipmentRepo.items[equipment.ID]
	assert.Equal(t, entities.EquipmentStatusInMaintenance, updated.Status)
	assert.Equal(t, entities.LocationTypePost, updated.CurrentLocation.Type)
	assert.Equal(t, &postID, updated.CurrentLocation.RefID)
}

func TestCreateMaintenanceOrder_OverridesDecommissioned(t *testing.T) {
	// Перевод в inmaintenance безусловный, статус decommissioned не исключение.
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusDecommissioned, entities.StockLocation())

	createOrder(t, svc, orgID, equipment.ID)
	assert.Equal(t, entities.EquipmentStatusInMaintenance, equipmentRepo.items[equipment.ID].Status)
}

func TestCloseLastOrder_RestoresAvailable(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	closeOrder(t, svc, orgID, orderID)

	// Восстановление только в available: исходный custody-статус не хранится.
	assert.Equal(t, entities.EquipmentStatusAvailable, equipmentRepo.items[equipment.ID].Status)
}

func TestCloseOrder_StampsClosedAt(t *testing.T) {
	svc, equipmentRepo, orderRepo, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	ctx := testContext(orgID, uuid.New())
	res, err := svc.UpdateMaintenanceOrder(ctx, orderID, dto.UpdateMaintenanceOrderDTO{
		Status: utils.StringPtr("cancelled"),
	})
	require.NoError(t, err)

	require.NotNil(t, res.ClosedAt)
	assert.WithinDuration(t, time.Now(), *res.ClosedAt, time.Minute)
	assert.Equal(t, entities.MaintenanceStatusCancelled, orderRepo.items[orderID].Status)
}

func TestTwoPendingOrders_RestoreOnlyAfterBothClosed(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	first := createOrder(t, svc, orgID, equipment.ID)
	second := createOrder(t, svc, orgID, equipment.ID)

	closeOrder(t, svc, orgID, first)
	assert.Equal(t, entities.EquipmentStatusInMaintenance, equipmentRepo.items[equipment.ID].Status,
		"одна заявка еще открыта")

	closeOrder(t, svc, orgID, second)
	assert.Equal(t, entities.EquipmentStatusAvailable, equipmentRepo.items[equipment.ID].Status)
}

func TestReopenOrder_ClearsClosedAtAndReturnsMaintenance(t *testing.T) {
	svc, equipmentRepo, orderRepo, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	ctx := testContext(orgID, uuid.New())

	_, err := svc.UpdateMaintenanceOrder(ctx, orderID, dto.UpdateMaintenanceOrderDTO{
		Status: utils.StringPtr("inprogress"),
	})
	require.NoError(t, err)

	// Даже если клиент прислал closed_at вместе с возвратом в open, поле обнуляется.
	res, err := svc.UpdateMaintenanceOrder(ctx, orderID, dto.UpdateMaintenanceOrderDTO{
		Status:   utils.StringPtr("open"),
		ClosedAt: utils.TimePtr(time.Now()),
	})
	require.NoError(t, err)
	assert.Nil(t, res.ClosedAt)
	assert.Nil(t, orderRepo.items[orderID].ClosedAt)
	assert.Equal(t, entities.EquipmentStatusInMaintenance, equipmentRepo.items[equipment.ID].Status)
}

func TestUpdateOrder_RejectsTransitionFromTerminal(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	closeOrder(t, svc, orgID, orderID)

	ctx := testContext(orgID, uuid.New())
	_, err := svc.UpdateMaintenanceOrder(ctx, orderID, dto.UpdateMaintenanceOrderDTO{
		Status: utils.StringPtr("inprogress"),
	})
	require.Error(t, err)

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestCloseOrder_DoesNotTouchForeignCustody(t *testing.T) {
	// Если статус оборудования уже не inmaintenance (например, после checkout),
	// закрытие заявки его не трогает.
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	equipmentRepo.items[equipment.ID].Status = entities.EquipmentStatusInUse

	closeOrder(t, svc, orgID, orderID)
	assert.Equal(t, entities.EquipmentStatusInUse, equipmentRepo.items[equipment.ID].Status)
}

func TestSoftDeletePendingOrder_RestoresAvailable(t *testing.T) {
	svc, equipmentRepo, orderRepo, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	ctx := testContext(orgID, uuid.New())
	require.NoError(t, svc.SoftDeleteMaintenanceOrder(ctx, orderID))

	assert.True(t, orderRepo.items[orderID].IsDeleted)
	assert.Equal(t, entities.EquipmentStatusAvailable, equipmentRepo.items[equipment.ID].Status)
}

func TestSoftDeleteClosedOrder_NoStatusChange(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	first := createOrder(t, svc, orgID, equipment.ID)
	second := createOrder(t, svc, orgID, equipment.ID)
	closeOrder(t, svc, orgID, first)

	// Удаление уже закрытой заявки не пересчитывает статус.
	ctx := testContext(orgID, uuid.New())
	require.NoError(t, svc.SoftDeleteMaintenanceOrder(ctx, first))
	assert.Equal(t, entities.EquipmentStatusInMaintenance, equipmentRepo.items[equipment.ID].Status)

	closeOrder(t, svc, orgID, second)
	assert.Equal(t, entities.EquipmentStatusAvailable, equipmentRepo.items[equipment.ID].Status)
}

func TestCloseOrder_EquipmentDeletedMeanwhile(t *testing.T) {
	svc, equipmentRepo, _, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	orderID := createOrder(t, svc, orgID, equipment.ID)
	equipmentRepo.items[equipment.ID].IsDeleted = true

	// Закрытие заявки не падает, если оборудование удалили параллельно.
	closeOrder(t, svc, orgID, orderID)
}

func TestCreateMaintenanceOrder_InvalidType(t *testing.T) {
	svc, equipmentRepo, orderRepo, orgID := newMaintenanceFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	ctx := testContext(orgID, uuid.New())
	_, err := svc.CreateMaintenanceOrder(ctx, dto.CreateMaintenanceOrderDTO{
		EquipmentID: equipment.ID.String(),
		Type:        "emergency",
	})
	require.Error(t, err)

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
	assert.Empty(t, orderRepo.items)
}
