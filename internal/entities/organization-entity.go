package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsDeleted    bool      `json:"-"`

	types.BaseEntity
}
