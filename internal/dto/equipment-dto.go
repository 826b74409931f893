package dto

import (
	"equipment-system/internal/entities"
)

const dtoTimeLayout = "2006-01-02, 15:04:05"

type CreateEquipmentDTO struct {
	EquipmentTypeID string `json:"equipment_type_id" validate:"required,uuid"`
	AssetTag        string `json:"asset_tag" validate:"required,min=1,max=100"`
	Name            string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateEquipmentDTO struct {
	EquipmentTypeID *string `json:"equipment_type_id,omitempty" validate:"omitempty,uuid"`
	AssetTag        *string `json:"asset_tag,omitempty" validate:"omitempty,min=1,max=100"`
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
}

type EquipmentDTO struct {
	ID              string      `json:"id"`
	EquipmentTypeID string      `json:"equipment_type_id"`
	AssetTag        string      `json:"asset_tag"`
	Name            string      `json:"name"`
	Status          string      `json:"status"`
	CurrentLocation LocationDTO `json:"current_location"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`

	EquipmentType *ShortEquipmentTypeDTO `json:"equipment_type,omitempty"`
}

type ShortEquipmentTypeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func EquipmentToDTO(e *entities.Equipment) *EquipmentDTO {
	out := &EquipmentDTO{
		ID:              e.ID.String(),
		EquipmentTypeID: e.EquipmentTypeID.String(),
		AssetTag:        e.AssetTag,
		Name:            e.Name,
		Status:          string(e.Status),
		CurrentLocation: LocationToDTO(e.CurrentLocation),
		CreatedAt:       e.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:       e.UpdatedAt.Format(dtoTimeLayout),
	}
	if e.EquipmentType != nil {
		out.EquipmentType = &ShortEquipmentTypeDTO{
			ID:   e.EquipmentType.ID.String(),
			Name: e.EquipmentType.Name,
		}
	}
	return out
}
