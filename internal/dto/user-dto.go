package dto

import "equipment-system/internal/entities"

type CreateUserDTO struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin manager viewer"`
}

type UpdateUserDTO struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager viewer"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func UserToDTO(u *entities.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(dtoTimeLayout),
		UpdatedAt: u.UpdatedAt.Format(dtoTimeLayout),
	}
}
