package entities

import (
	"time"

	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type Contract struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ClientName     string     `json:"client_name"`
	Number         string     `json:"number"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
	IsDeleted      bool       `json:"-"`

	types.BaseEntity
}
