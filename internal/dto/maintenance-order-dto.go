package dto

import (
	"time"

	"equipment-system/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateMaintenanceOrderDTO struct {
	EquipmentID string      `json:"equipment_id" validate:"required,uuid"`
	Type        string      `json:"type" validate:"required,oneof=preventive corrective"`
	Description null.String `json:"description,omitempty"`
	OpenedAt    *time.Time  `json:"opened_at,omitempty"`
	NextDueAt   null.Time   `json:"next_due_at,omitempty"`
}

type UpdateMaintenanceOrderDTO struct {
	Type        *string     `json:"type,omitempty" validate:"omitempty,oneof=preventive corrective"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=open inprogress closed cancelled"`
	Description null.String `json:"description,omitempty"`
	OpenedAt    *time.Time  `json:"opened_at,omitempty"`
	ClosedAt    *time.Time  `json:"closed_at,omitempty"`
	NextDueAt   null.Time   `json:"next_due_at,omitempty"`
}

type MaintenanceOrderDTO struct {
	ID          string     `json:"id"`
	EquipmentID string     `json:"equipment_id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at"`
	NextDueAt   *time.Time `json:"next_due_at"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

func MaintenanceOrderToDTO(o *entities.MaintenanceOrder) *MaintenanceOrderDTO {
	return &MaintenanceOrderDTO{
		ID:          o.ID.String(),
		EquipmentID: o.EquipmentID.String(),
		Type:        string(o.Type),
		Status:      string(o.Status),
		Description: o.Description,
		OpenedAt:    o.OpenedAt,
		ClosedAt:    o.ClosedAt,
		NextDueAt:   o.NextDueAt,
		CreatedAt:   o.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:   o.UpdatedAt.Format(dtoTimeLayout),
	}
}
