package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type Operator struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	FullName       string     `json:"full_name"`
	BadgeNumber    string     `json:"badge_number"`
	Phone          string     `json:"phone"`
	PostID         *uuid.UUID `json:"post_id"`
	IsDeleted      bool       `json:"-"`

	types.BaseEntity
}
