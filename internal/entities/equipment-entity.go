package entities

import (
	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type EquipmentStatus string

const (
	EquipmentStatusAvailable      EquipmentStatus = "available"
	EquipmentStatusInUse          EquipmentStatus = "inuse"
	EquipmentStatusInMaintenance  EquipmentStatus = "inmaintenance"
	EquipmentStatusDecommissioned EquipmentStatus = "decommissioned"
	EquipmentStatusLost           EquipmentStatus = "lost"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusInUse, EquipmentStatusInMaintenance,
		EquipmentStatusDecommissioned, EquipmentStatusLost:
		return true
	}
	return false
}

type LocationType string

const (
	LocationTypeStock               LocationType = "stock"
	LocationTypePost                LocationType = "post"
	LocationTypeOperator            LocationType = "operator"
	LocationTypeMaintenanceProvider LocationType = "maintenanceProvider"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationTypeStock, LocationTypePost, LocationTypeOperator, LocationTypeMaintenanceProvider:
		return true
	}
	return false
}

// Location — текущее местонахождение оборудования: склад, пост, оператор
// или сервисный центр. RefID пустой только для склада.
type Location struct {
	Type  LocationType `json:"type"`
	RefID *uuid.UUID   `json:"ref_id"`
}

// StockLocation — местонахождение по умолчанию для оборудования без назначений.
func StockLocation() Location {
	return Location{Type: LocationTypeStock, RefID: nil}
}

type Equipment struct {
	ID              uuid.UUID       `json:"id"`
	OrganizationID  uuid.UUID       `json:"organization_id"`
	EquipmentTypeID uuid.UUID       `json:"equipment_type_id"`
	AssetTag        string          `json:"asset_tag"`
	Name            string          `json:"name"`
	Status          EquipmentStatus `json:"status"`
	CurrentLocation Location        `json:"current_location"`
	IsDeleted       bool            `json:"-"`

	types.BaseEntity

	// Связанные данные (не колонки в таблице)
	EquipmentType *EquipmentType `json:"equipment_type,omitempty" db:"-"`
}
