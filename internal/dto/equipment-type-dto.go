package dto

import "equipment-system/internal/entities"

type CreateEquipmentTypeDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"omitempty,max=255"`
}

type UpdateEquipmentTypeDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=255"`
}

type EquipmentTypeDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func EquipmentTypeToDTO(t *entities.EquipmentType) *EquipmentTypeDTO {
	return &EquipmentTypeDTO{
		ID:        t.ID.String(),
		Name:      t.Name,
		Category:  t.Category,
		CreatedAt: t.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt: t.UpdatedAt.Format(dtoTimeLayout),
	}
}
