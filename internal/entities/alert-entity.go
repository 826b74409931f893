package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertKindMaintenanceOpened AlertKind = "maintenance_opened"
	AlertKindMaintenanceClosed AlertKind = "maintenance_closed"
	AlertKindEquipmentMoved    AlertKind = "equipment_moved"
)

type Alert struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	EquipmentID    *uuid.UUID `json:"equipment_id"`
	Kind           AlertKind  `json:"kind"`
	Message        string     `json:"message"`
	IsRead         bool       `json:"is_read"`
	IsDeleted      bool       `json:"-"`

	types.BaseEntity
}
