package services

import (
	"context"

	"equipment-system/internal/entities"
	"equipment-system/pkg/contextkeys"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTxManager исполняет функцию без реальной транзакции.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func testContext(orgID, userID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.OrganizationIDKey, orgID)
	return context.WithValue(ctx, contextkeys.UserIDKey, userID)
}

// --- оборудование ---

type fakeEquipmentRepo struct {
	items map[uuid.UUID]*entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uuid.UUID]*entities.Equipment)}
}

func (r *fakeEquipmentRepo) get(orgID, id uuid.UUID) (*entities.Equipment, error) {
	e, ok := r.items[id]
	if !ok || e.OrganizationID != orgID || e.IsDeleted {
		return nil, apperrors.ErrNotFound
	}
	return e, nil
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Equipment, uint64, error) {
	var list []entities.Equipment
	for _, e := range r.items {
		if e.OrganizationID == orgID && !e.IsDeleted {
			list = append(list, *e)
		}
	}
	return list, uint64(len(list)), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, orgID, id uuid.UUID) (*entities.Equipment, error) {
	e, err := r.get(orgID, id)
	if err != nil {
		return nil, err
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEquipmentRepo) FindEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.Equipment, error) {
	return r.FindEquipment(ctx, orgID, id)
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	clone := *equipment
	r.items[equipment.ID] = &clone
	return nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	stored, err := r.get(equipment.OrganizationID, equipment.ID)
	if err != nil {
		return err
	}
	stored.EquipmentTypeID = equipment.EquipmentTypeID
	stored.AssetTag = equipment.AssetTag
	stored.Name = equipment.Name
	return nil
}

func (r *fakeEquipmentRepo) UpdateEquipmentStateTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID, location entities.Location, status entities.EquipmentStatus) error {
	stored, err := r.get(orgID, id)
	if err != nil {
		return err
	}
	stored.CurrentLocation = location
	stored.Status = status
	return nil
}

func (r *fakeEquipmentRepo) SoftDeleteEquipment(ctx context.Context, orgID, id uuid.UUID) error {
	stored, err := r.get(orgID, id)
	if err != nil {
		return err
	}
	stored.IsDeleted = true
	return nil
}

// --- назначения ---

type fakeAssignmentRepo struct {
	items map[uuid.UUID]*entities.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: make(map[uuid.UUID]*entities.Assignment)}
}

func (r *fakeAssignmentRepo) GetAssignments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Assignment, uint64, error) {
	var list []entities.Assignment
	for _, a := range r.items {
		if a.OrganizationID == orgID && !a.IsDeleted {
			list = append(list, *a)
		}
	}
	return list, uint64(len(list)), nil
}

func (r *fakeAssignmentRepo) FindAssignment(ctx context.Context, orgID, id uuid.UUID) (*entities.Assignment, error) {
	a, ok := r.items[id]
	if !ok || a.OrganizationID != orgID || a.IsDeleted {
		return nil, apperrors.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAssignmentRepo) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, assignment *entities.Assignment) error {
	clone := *assignment
	r.items[assignment.ID] = &clone
	return nil
}

func (r *fakeAssignmentRepo) UpdateAssignment(ctx context.Context, orgID, id uuid.UUID, assignment *entities.Assignment) error {
	stored, ok := r.items[id]
	if !ok || stored.OrganizationID != orgID || stored.IsDeleted {
		return apperrors.ErrNotFound
	}
	stored.EffectiveAt = assignment.EffectiveAt
	stored.Notes = assignment.Notes
	return nil
}

func (r *fakeAssignmentRepo) SoftDeleteAssignment(ctx context.Context, orgID, id uuid.UUID) error {
	stored, ok := r.items[id]
	if !ok || stored.OrganizationID != orgID || stored.IsDeleted {
		return apperrors.ErrNotFound
	}
	stored.IsDeleted = true
	return nil
}

// --- заявки на обслуживание ---

type fakeMaintenanceOrderRepo struct {
	items map[uuid.UUID]*entities.MaintenanceOrder
}

func newFakeMaintenanceOrderRepo() *fakeMaintenanceOrderRepo {
	return &fakeMaintenanceOrderRepo{items: make(map[uuid.UUID]*entities.MaintenanceOrder)}
}

func (r *fakeMaintenanceOrderRepo) get(orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	o, ok := r.items[id]
	if !ok || o.OrganizationID != orgID || o.IsDeleted {
		return nil, apperrors.ErrNotFound
	}
	return o, nil
}

func (r *fakeMaintenanceOrderRepo) GetMaintenanceOrders(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.MaintenanceOrder, uint64, error) {
	var list []entities.MaintenanceOrder
	for _, o := range r.items {
		if o.OrganizationID == orgID && !o.IsDeleted {
			list = append(list, *o)
		}
	}
	return list, uint64(len(list)), nil
}

func (r *fakeMaintenanceOrderRepo) FindMaintenanceOrder(ctx context.Context, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	o, err := r.get(orgID, id)
	if err != nil {
		return nil, err
	}
	clone := *o
	return &clone, nil
}

func (r *fakeMaintenanceOrderRepo) FindMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	return r.FindMaintenanceOrder(ctx, orgID, id)
}

func (r *fakeMaintenanceOrderRepo) CreateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error {
	clone := *order
	r.items[order.ID] = &clone
	return nil
}

func (r *fakeMaintenanceOrderRepo) UpdateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error {
	stored, err := r.get(order.OrganizationID, order.ID)
	if err != nil {
		return err
	}
	*stored = *order
	return nil
}

func (r *fakeMaintenanceOrderRepo) SoftDeleteMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) error {
	stored, err := r.get(orgID, id)
	if err != nil {
		return err
	}
	stored.IsDeleted = true
	return nil
}

func (r *fakeMaintenanceOrderRepo) CountPendingForEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, equipmentID uuid.UUID, excludeOrderID *uuid.UUID) (int64, error) {
	var count int64
	for _, o := range r.items {
		if o.OrganizationID != orgID || o.EquipmentID != equipmentID || o.IsDeleted {
			continue
		}
		if excludeOrderID != nil && o.ID == *excludeOrderID {
			continue
		}
		if o.Status.IsPending() {
			count++
		}
	}
	return count, nil
}
