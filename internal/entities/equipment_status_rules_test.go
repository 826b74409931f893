package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAfterAssignment(t *testing.T) {
	cases := []struct {
		name    string
		current EquipmentStatus
		action  AssignmentAction
		want    EquipmentStatus
	}{
		{"checkout со склада", EquipmentStatusAvailable, AssignmentActionCheckout, EquipmentStatusInUse},
		{"checkout из обслуживания", EquipmentStatusInMaintenance, AssignmentActionCheckout, EquipmentStatusInUse},
		{"checkin из выдачи", EquipmentStatusInUse, AssignmentActionCheckin, EquipmentStatusAvailable},
		{"checkin списанного", EquipmentStatusDecommissioned, AssignmentActionCheckin, EquipmentStatusAvailable},
		{"transfer не меняет статус", EquipmentStatusInUse, AssignmentActionTransfer, EquipmentStatusInUse},
		{"transfer утерянного", EquipmentStatusLost, AssignmentActionTransfer, EquipmentStatusLost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusAfterAssignment(tc.current, tc.action))
		})
	}
}

func TestDeriveEquipmentStatus(t *testing.T) {
	assert.Equal(t, EquipmentStatusInMaintenance, DeriveEquipmentStatus(EquipmentStatusAvailable, 1))
	assert.Equal(t, EquipmentStatusInMaintenance, DeriveEquipmentStatus(EquipmentStatusInUse, 3))
	assert.Equal(t, EquipmentStatusAvailable, DeriveEquipmentStatus(EquipmentStatusAvailable, 0))
	assert.Equal(t, EquipmentStatusInUse, DeriveEquipmentStatus(EquipmentStatusInUse, 0))
}

func TestMaintenanceStatusCanTransition(t *testing.T) {
	allowed := []struct{ from, to MaintenanceOrderStatus }{
		{MaintenanceStatusOpen, MaintenanceStatusInProgress},
		{MaintenanceStatusOpen, MaintenanceStatusClosed},
		{MaintenanceStatusOpen, MaintenanceStatusCancelled},
		{MaintenanceStatusInProgress, MaintenanceStatusClosed},
		{MaintenanceStatusInProgress, MaintenanceStatusCancelled},
		{MaintenanceStatusInProgress, MaintenanceStatusOpen},
		{MaintenanceStatusOpen, MaintenanceStatusOpen},
	}
	for _, tc := range allowed {
		assert.True(t, MaintenanceStatusCanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to MaintenanceOrderStatus }{
		{MaintenanceStatusClosed, MaintenanceStatusOpen},
		{MaintenanceStatusClosed, MaintenanceStatusInProgress},
		{MaintenanceStatusClosed, MaintenanceStatusCancelled},
		{MaintenanceStatusCancelled, MaintenanceStatusOpen},
		{MaintenanceStatusCancelled, MaintenanceStatusClosed},
	}
	for _, tc := range denied {
		assert.False(t, MaintenanceStatusCanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestMaintenanceStatusIsPending(t *testing.T) {
	assert.True(t, MaintenanceStatusOpen.IsPending())
	assert.True(t, MaintenanceStatusInProgress.IsPending())
	assert.False(t, MaintenanceStatusClosed.IsPending())
	assert.False(t, MaintenanceStatusCancelled.IsPending())
}
