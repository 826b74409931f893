package dto

import "equipment-system/internal/entities"

type CreatePostDTO struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Address    string  `json:"address" validate:"omitempty,max=500"`
	ContractID *string `json:"contract_id,omitempty" validate:"omitempty,uuid"`
}

type UpdatePostDTO struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Address    *string `json:"address,omitempty" validate:"omitempty,max=500"`
	ContractID *string `json:"contract_id,omitempty" validate:"omitempty,uuid"`
}

type PostDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	ContractID *string `json:"contract_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func PostToDTO(p *entities.Post) *PostDTO {
	out := &PostDTO{
		ID:        p.ID.String(),
		Name:      p.Name,
		Address:   p.Address,
		CreatedAt: p.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt: p.UpdatedAt.Format(dtoTimeLayout),
	}
	if p.ContractID != nil {
		s := p.ContractID.String()
		out.ContractID = &s
	}
	return out
}
