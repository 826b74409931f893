package entities

import (
	"time"

	"equipment-system/pkg/types"

	"github.com/google/uuid"
)

type AssignmentAction string

const (
	AssignmentActionCheckout AssignmentAction = "checkout"
	AssignmentActionCheckin  AssignmentAction = "checkin"
	AssignmentActionTransfer AssignmentAction = "transfer"
)

func (a AssignmentAction) Valid() bool {
	switch a {
	case AssignmentActionCheckout, AssignmentActionCheckin, AssignmentActionTransfer:
		return true
	}
	return false
}

// Assignment — запись журнала перемещений оборудования (append-only).
// FromLocation — снимок местонахождения оборудования на момент создания,
// после создания меняются только EffectiveAt и Notes.
type Assignment struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	EquipmentID    uuid.UUID        `json:"equipment_id"`
	Action         AssignmentAction `json:"action"`
	FromLocation   Location         `json:"from_location"`
	ToLocation     Location         `json:"to_location"`
	EffectiveAt    time.Time        `json:"effective_at"`
	Notes          string           `json:"notes"`
	IsDeleted      bool             `json:"-"`

	types.BaseEntity
}
