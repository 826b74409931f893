package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type EquipmentType struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	IsDeleted      bool      `json:"-"`

	types.BaseEntity
}
