package dto

import (
	"equipment-system/internal/entities"

	"github.com/google/uuid"
)

// LocationInputDTO — местонахождение в теле запроса. RefID валидируется
// на формат UUID до любых обращений к БД.
type LocationInputDTO struct {
	Type  string  `json:"type" validate:"required,oneof=stock post operator maintenanceProvider"`
	RefID *string `json:"ref_id" validate:"omitempty,uuid"`
}

type LocationDTO struct {
	Type  string  `json:"type"`
	RefID *string `json:"ref_id"`
}

func LocationToDTO(loc entities.Location) LocationDTO {
	out := LocationDTO{Type: string(loc.Type)}
	if loc.RefID != nil {
		s := loc.RefID.String()
		out.RefID = &s
	}
	return out
}

func LocationFromInput(in LocationInputDTO) (entities.Location, error) {
	loc := entities.Location{Type: entities.LocationType(in.Type)}
	if in.RefID != nil {
		id, err := uuid.Parse(*in.RefID)
		if err != nil {
			return entities.Location{}, err
		}
		loc.RefID = &id
	}
	return loc, nil
}
