package entities

// Правила вывода статуса оборудования. Статус — производная величина
// от двух независимых источников: последнего назначения (custody) и
// множества незакрытых заявок на обслуживание. Обе службы записи обязаны
// проходить через эти функции, а не выставлять статус напрямую.

// StatusAfterAssignment возвращает custody-статус после действия назначения:
//
//	checkout -> inuse
//	checkin  -> available
//	transfer -> без изменений
func StatusAfterAssignment(current EquipmentStatus, action AssignmentAction) EquipmentStatus {
	switch action {
	case AssignmentActionCheckout:
		return EquipmentStatusInUse
	case AssignmentActionCheckin:
		return EquipmentStatusAvailable
	case AssignmentActionTransfer:
		return current
	}
	return current
}

// DeriveEquipmentStatus сводит custody-статус и число незакрытых заявок на
// обслуживание к итоговому статусу: пока есть хотя бы одна заявка в статусе
// open/inprogress — оборудование inmaintenance, иначе действует custody-статус.
func DeriveEquipmentStatus(custody EquipmentStatus, pendingMaintenance int64) EquipmentStatus {
	if pendingMaintenance > 0 {
		return EquipmentStatusInMaintenance
	}
	return custody
}
