package dto

import (
	"time"

	"equipment-system/internal/entities"
)

type CreateContractDTO struct {
	ClientName string     `json:"client_name" validate:"required,min=1,max=255"`
	Number     string     `json:"number" validate:"required,min=1,max=100"`
	StartsAt   time.Time  `json:"starts_at" validate:"required"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
}

type UpdateContractDTO struct {
	ClientName *string    `json:"client_name,omitempty" validate:"omitempty,min=1,max=255"`
	Number     *string    `json:"number,omitempty" validate:"omitempty,min=1,max=100"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
}

type ContractDTO struct {
	ID         string     `json:"id"`
	ClientName string     `json:"client_name"`
	Number     string     `json:"number"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

func ContractToDTO(c *entities.Contract) *ContractDTO {
	return &ContractDTO{
		ID:         c.ID.String(),
		ClientName: c.ClientName,
		Number:     c.Number,
		StartsAt:   c.StartsAt,
		EndsAt:     c.EndsAt,
		CreatedAt:  c.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:  c.UpdatedAt.Format(dtoTimeLayout),
	}
}
