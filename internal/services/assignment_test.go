package services

import (
	"testing"

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

func newAssignmentFixture(t *testing.T) (AssignmentServiceInterface, *fakeEquipmentRepo, *fakeAssignmentRepo, uuid.UUID) {
	t.Helper()
	logger := zap.NewNop()
	equipmentRepo := newFakeEquipmentRepo()
	assignmentRepo := newFakeAssignmentRepo()
	svc := NewAssignmentService(&fakeTxManager{}, assignmentRepo, equipmentRepo, eventbus.New(logger), logger)
	return svc, equipmentRepo, assignmentRepo, uuid.New()
}

func seedEquipment(repo *fakeEquipmentRepo, orgID uuid.UUID, status entities.EquipmentStatus, loc entities.Location) *entities.Equipment {
	e := &entities.Equipment{
		ID:              uuid.New(),
		OrganizationID:  orgID,
		EquipmentTypeID: uuid.New(),
		AssetTag:        "RT-001",
		Name:            "Радиостанция",
		Status:          status,
		CurrentLocation: loc,
	}
	repo.items[e.ID] = e
	return e
}

func TestCreateAssignment_CheckoutSetsInUse(t *testing.T) {
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())
	ctx := testContext(orgID, uuid.New())

	postID := uuid.New().String()
	res, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "post", RefID: &postID},
	})
	require.NoError(t, err)

	assert.Equal(t, "checkout", res.Action)
	assert.Equal(t, "stock", res.FromLocation.Type)
	assert.Equal(t, "post", res.ToLocation.Type)

	updated := equipmentRepo.items[equipment.ID]
	assert.Equal(t, entities.EquipmentStatusInUse, updated.Status)
	assert.Equal(t, entities.LocationTypePost, updated.CurrentLocation.Type)
}

func TestCreateAssignment_CheckinSetsAvailable(t *testing.T) {
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	postID := uuid.New()
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusInUse,
		entities.Location{Type: entities.LocationTypePost, RefID: &postID})
	ctx := testContext(orgID, uuid.New())

	res, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkin",
		ToLocation:  dto.LocationInputDTO{Type: "stock"},
	})
	require.NoError(t, err)

	// from_location — снимок ДО обновления
	assert.Equal(t, "post", res.FromLocation.Type)
	require.NotNil(t, res.FromLocation.RefID)
	assert.Equal(t, postID.String(), *res.FromLocation.RefID)

	updated := equipmentRepo.items[equipment.ID]
	assert.Equal(t, entities.EquipmentStatusAvailable, updated.Status)
	assert.Equal(t, entities.LocationTypeStock, updated.CurrentLocation.Type)
}

func TestCreateAssignment_TransferKeepsStatus(t *testing.T) {
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	postID := uuid.New()
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusInUse,
		entities.Location{Type: entities.LocationTypePost, RefID: &postID})
	ctx := testContext(orgID, uuid.New())

	operatorID := uuid.New().String()
	_, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "transfer",
		ToLocation:  dto.LocationInputDTO{Type: "operator", RefID: &operatorID},
	})
	require.NoError(t, err)

	updated := equipmentRepo.items[equipment.ID]
	assert.Equal(t, entities.EquipmentStatusInUse, updated.Status)
	assert.Equal(t, entities.LocationTypeOperator, updated.CurrentLocation.Type)
}

func TestCreateAssignment_CheckoutOverridesMaintenance(t *testing.T) {
	// Служба назначений не знает про обслуживание: checkout всегда дает inuse.
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusInMaintenance, entities.StockLocation())
	ctx := testContext(orgID, uuid.New())

	postID := uuid.New().String()
	_, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "post", RefID: &postID},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.EquipmentStatusInUse, equipmentRepo.items[equipment.ID].Status)
}

func TestCreateAssignment_UnknownEquipment(t *testing.T) {
	svc, _, _, orgID := newAssignmentFixture(t)
	ctx := testContext(orgID, uuid.New())

	_, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: uuid.New().String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "stock"},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateAssignment_MalformedEquipmentID(t *testing.T) {
	svc, _, assignmentRepo, orgID := newAssignmentFixture(t)
	ctx := testContext(orgID, uuid.New())

	_, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: "not-a-uuid",
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "stock"},
	})
	require.Error(t, err)

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
	assert.Empty(t, assignmentRepo.items)
}

func TestCreateAssignment_ForeignOrganization(t *testing.T) {
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())

	// Токен другой организации не видит чужое оборудование.
	ctx := testContext(uuid.New(), uuid.New())
	_, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "stock"},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSoftDeleteAssignment_DoesNotRevertEquipment(t *testing.T) {
	svc, equipmentRepo, _, orgID := newAssignmentFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())
	ctx := testContext(orgID, uuid.New())

	postID := uuid.New().String()
	res, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "post", RefID: &postID},
	})
	require.NoError(t, err)

	assignmentID, err := uuid.Parse(res.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SoftDeleteAssignment(ctx, assignmentID))

	// Удаление записи журнала — не отмена перемещения.
	updated := equipmentRepo.items[equipment.ID]
	assert.Equal(t, entities.EquipmentStatusInUse, updated.Status)
	assert.Equal(t, entities.LocationTypePost, updated.CurrentLocation.Type)

	_, err = svc.FindAssignment(ctx, assignmentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateAssignment_OnlyEffectiveAtAndNotes(t *testing.T) {
	svc, equipmentRepo, assignmentRepo, orgID := newAssignmentFixture(t)
	equipment := seedEquipment(equipmentRepo, orgID, entities.EquipmentStatusAvailable, entities.StockLocation())
	ctx := testContext(orgID, uuid.New())

	res, err := svc.CreateAssignment(ctx, dto.CreateAssignmentDTO{
		EquipmentID: equipment.ID.String(),
		Action:      "checkout",
		ToLocation:  dto.LocationInputDTO{Type: "stock"},
	})
	require.NoError(t, err)

	assignmentID := uuid.MustParse(res.ID)
	notes := "выдано на смену"
	updated, err := svc.UpdateAssignment(ctx, assignmentID, dto.UpdateAssignmentDTO{Notes: utils.StringPtr(notes)})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)

	stored := assignmentRepo.items[assignmentID]
	assert.Equal(t, entities.AssignmentActionCheckout, stored.Action)
	assert.Equal(t, notes, stored.Notes)
}
