package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type Post struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	ContractID     *uuid.UUID `json:"contract_id"`
	IsDeleted      bool       `json:"-"`

	types.BaseEntity
}
