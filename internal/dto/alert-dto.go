package dto

import "equipment-system/internal/entities"

type AlertDTO struct {
	ID          string  `json:"id"`
	EquipmentID *string `json:"equipment_id"`
	Kind        string  `json:"kind"`
	Message     string  `json:"message"`
	IsRead      bool    `json:"is_read"`
	CreatedAt   string  `json:"created_at"`
}

func AlertToDTO(a *entities.Alert) *AlertDTO {
	out := &AlertDTO{
		ID:        a.ID.String(),
		Kind:      string(a.Kind),
		Message:   a.Message,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt.Format(dtoTimeLayout),
	}
	if a.EquipmentID != nil {
		s := a.EquipmentID.String()
		out.EquipmentID = &s
	}
	return out
}
