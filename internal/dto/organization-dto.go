package dto

import "equipment-system/internal/entities"

type CreateOrganizationDTO struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=30"`
}

type UpdateOrganizationDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
}

type OrganizationDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func OrganizationToDTO(o *entities.Organization) *OrganizationDTO {
	return &OrganizationDTO{
		ID:           o.ID.String(),
		Name:         o.Name,
		ContactEmail: o.ContactEmail,
		ContactPhone: o.ContactPhone,
		CreatedAt:    o.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:    o.UpdatedAt.Format(dtoTimeLayout),
	}
}
