package dto

import "equipment-system/internal/entities"

type CreateOperatorDTO struct {
	FullName    string  `json:"full_name" validate:"required,min=1,max=255"`
	BadgeNumber string  `json:"badge_number" validate:"required,min=1,max=100"`
	Phone       string  `json:"phone" validate:"omitempty,max=30"`
	PostID      *string `json:"post_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateOperatorDTO struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	BadgeNumber *string `json:"badge_number,omitempty" validate:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	PostID      *string `json:"post_id,omitempty" validate:"omitempty,uuid"`
}

type OperatorDTO struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	BadgeNumber string  `json:"badge_number"`
	Phone       string  `json:"phone"`
	PostID      *string `json:"post_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func OperatorToDTO(o *entities.Operator) *OperatorDTO {
	out := &OperatorDTO{
		ID:          o.ID.String(),
		FullName:    o.FullName,
		BadgeNumber: o.BadgeNumber,
		Phone:       o.Phone,
		CreatedAt:   o.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt:   o.UpdatedAt.Format(dtoTimeLayout),
	}
	if o.PostID != nil {
		s := o.PostID.String()
		out.PostID = &s
	}
	return out
}
