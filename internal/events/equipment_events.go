package events

import (
	"equipment-system/internal/entities"

	"github.com/google/uuid"
)

// EquipmentMovedEvent возникает после успешной записи назначения.
type EquipmentMovedEvent struct {
	OrganizationID uuid.UUID
	EquipmentID    uuid.UUID
	AssetTag       string
	Action         entities.AssignmentAction
	ToLocation     entities.Location
}

func (e EquipmentMovedEvent) Name() string { return "equipment.moved" }

// MaintenanceOrderOpenedEvent возникает после создания заявки на обслуживание.
type MaintenanceOrderOpenedEvent struct {
	OrganizationID uuid.UUID
	EquipmentID    uuid.UUID
	OrderID        uuid.UUID
	AssetTag       string
	OrderType      entities.MaintenanceOrderType
}

func (e MaintenanceOrderOpenedEvent) Name() string { return "maintenance.order.opened" }

// MaintenanceOrderClosedEvent возникает при закрытии/отмене/удалении заявки.
type MaintenanceOrderClosedEvent struct {
	OrganizationID uuid.UUID
	EquipmentID    uuid.UUID
	OrderID        uuid.UUID
	AssetTag       string
	FinalStatus    entities.MaintenanceOrderStatus
}

func (e MaintenanceOrderClosedEvent) Name() string { return "maintenance.order.closed" }
