package dto

import (
	"time"

	"equipment-system/internal/entities"
)

type CreateAssignmentDTO struct {
	EquipmentID string           `json:"equipment_id" validate:"required,uuid"`
	Action      string           `json:"action" validate:"required,oneof=checkout checkin transfer"`
	ToLocation  LocationInputDTO `json:"to_location" validate:"required"`
	EffectiveAt *time.Time       `json:"effective_at,omitempty"`
	Notes       string           `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateAssignmentDTO — после создания меняются только effective_at и notes.
type UpdateAssignmentDTO struct {
	EffectiveAt *time.Time `json:"effective_at,omitempty"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type AssignmentDTO struct {
	ID           string      `json:"id"`
	EquipmentID  string      `json:"equipment_id"`
	Action       string      `json:"action"`
	FromLocation LocationDTO `json:"from_location"`
	ToLocation   LocationDTO `json:"to_location"`
	EffectiveAt  time.Time   `json:"effective_at"`
	Notes        string      `json:"notes"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

func AssignmentToDTO(a *entities.Assignment) *AssignmentDTO {
	return &AssignmentDTO{
		ID:           a.ID.String(),
		EquipmentID:  a.EquipmentID.String(),
		Action:       string(a.Action),
		FromLocation: LocationToDTO(a.FromLocation),
		ToLocation:   LocationToDTO(a.ToLocation),
		EffectiveAt:  a.EffectiveAt,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:    a.UpdatedAt.Format(dtoTimeLayout),
	}
}
