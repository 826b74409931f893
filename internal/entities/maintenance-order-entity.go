package entities

import (
	"time"

	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type MaintenanceOrderType string

const (
	MaintenanceTypePreventive MaintenanceOrderType = "preventive"
	MaintenanceTypeCorrective MaintenanceOrderType = "corrective"
)

func (t MaintenanceOrderType) Valid() bool {
	return t == MaintenanceTypePreventive || t == MaintenanceTypeCorrective
}

type MaintenanceOrderStatus string

const (
	MaintenanceStatusOpen       MaintenanceOrderStatus = "open"
	MaintenanceStatusInProgress MaintenanceOrderStatus = "inprogress"
	MaintenanceStatusClosed     MaintenanceOrderStatus = "closed"
	MaintenanceStatusCancelled  MaintenanceOrderStatus = "cancelled"
)

func (s MaintenanceOrderStatus) Valid() bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusClosed, MaintenanceStatusCancelled:
		return true
	}
	return false
}

// IsPending — заявка еще держит оборудование в обслуживании.
func (s MaintenanceOrderStatus) IsPending() bool {
	return s == MaintenanceStatusOpen || s == MaintenanceStatusInProgress
}

// maintenanceTransitions — таблица допустимых переходов статуса заявки.
// closed и cancelled — терминальные состояния.
var maintenanceTransitions = map[MaintenanceOrderStatus][]MaintenanceOrderStatus{
	MaintenanceStatusOpen:       {MaintenanceStatusInProgress, MaintenanceStatusClosed, MaintenanceStatusCancelled},
	MaintenanceStatusInProgress: {MaintenanceStatusClosed, MaintenanceStatusCancelled, MaintenanceStatusOpen},
	MaintenanceStatusClosed:     {},
	MaintenanceStatusCancelled:  {},
}

// MaintenanceStatusCanTransition проверяет переход по таблице состояний.
func MaintenanceStatusCanTransition(from, to MaintenanceOrderStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range maintenanceTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type MaintenanceOrder struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organization_id"`
	EquipmentID    uuid.UUID              `json:"equipment_id"`
	Type           MaintenanceOrderType   `json:"type"`
	Status         MaintenanceOrderStatus `json:"status"`
	Description    string                 `json:"description"`
	OpenedAt       time.Time              `json:"opened_at"`
	ClosedAt       *time.Time             `json:"closed_at"`
	NextDueAt      *time.Time             `json:"next_due_at"`
	IsDeleted      bool                   `json:"-"`

	types.BaseEntity
}
