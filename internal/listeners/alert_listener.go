package listeners

import (
	"context"
	"fmt"

	"equipment-system/internal/entities"
	"equipment-system/internal/events"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/eventbus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertListener превращает доменные события в записи ленты уведомлений.
type AlertListener struct {
	alertRepo repositories.AlertRepositoryInterface
	logger    *zap.Logger
}

func NewAlertListener(alertRepo repositories.AlertRepositoryInterface, logger *zap.Logger) *AlertListener {
	return &AlertListener{alertRepo: alertRepo, logger: logger}
}

// Register подписывает слушателя на все интересующие его события.
func (l *AlertListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EquipmentMovedEvent{}.Name(), l.handleEquipmentMoved)
	bus.Subscribe(events.MaintenanceOrderOpenedEvent{}.Name(), l.handleMaintenanceOpened)
	bus.Subscribe(events.MaintenanceOrderClosedEvent{}.Name(), l.handleMaintenanceClosed)
}

func (l *AlertListener) handleEquipmentMoved(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EquipmentMovedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	message := fmt.Sprintf("Оборудование %s: %s -> %s", e.AssetTag, e.Action, e.ToLocation.Type)
	return l.createAlert(ctx, e.OrganizationID, e.EquipmentID, entities.AlertKindEquipmentMoved, message)
}

func (l *AlertListener) handleMaintenanceOpened(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.MaintenanceOrderOpenedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	message := fmt.Sprintf("Оборудование %s отправлено на обслуживание (%s)", e.AssetTag, e.OrderType)
	return l.createAlert(ctx, e.OrganizationID, e.EquipmentID, entities.AlertKindMaintenanceOpened, message)
}

func (l *AlertListener) handleMaintenanceClosed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.MaintenanceOrderClosedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	message := fmt.Sprintf("Заявка на обслуживание оборудования %s завершена (%s)", e.AssetTag, e.FinalStatus)
	return l.createAlert(ctx, e.OrganizationID, e.EquipmentID, entities.AlertKindMaintenanceClosed, message)
}

func (l *AlertListener) createAlert(ctx context.Context, orgID, equipmentID uuid.UUID, kind entities.AlertKind, message string) error {
	alert := &entities.Alert{
		ID:             uuid.New(),
		OrganizationID: orgID,
		EquipmentID:    &equipmentID,
		Kind:           kind,
		Message:        message,
	}
	if err := l.alertRepo.CreateAlert(ctx, alert); err != nil {
		l.logger.Error("Ошибка при создании уведомления",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return err
	}
	return nil
}
