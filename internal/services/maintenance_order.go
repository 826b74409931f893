package services

import (
	"context"
	"errors"
	"time"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/events"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MaintenanceOrderServiceInterface interface {
	GetMaintenanceOrders(ctx context.Context, params utils.QueryParams) ([]dto.MaintenanceOrderDTO, uint64, error)
	FindMaintenanceOrder(ctx context.Context, id uuid.UUID) (*dto.MaintenanceOrderDTO, error)
	CreateMaintenanceOrder(ctx context.Context, payload dto.CreateMaintenanceOrderDTO) (*dto.MaintenanceOrderDTO, error)
	UpdateMaintenanceOrder(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceOrderDTO) (*dto.MaintenanceOrderDTO, error)
	SoftDeleteMaintenanceOrder(ctx context.Context, id uuid.UUID) error
}

// MaintenanceOrderService — служба записи обслуживания: ведет заявки и держит
// статус оборудования синхронным с множеством незакрытых заявок, ничего не
// зная о журнале назначений.
type MaintenanceOrderService struct {
	txManager     repositories.TxManagerInterface
	orderRepo     repositories.MaintenanceOrderRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewMaintenanceOrderService(
	txManager repositories.TxManagerInterface,
	orderRepo repositories.MaintenanceOrderRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) MaintenanceOrderServiceInterface {
	return &MaintenanceOrderService{
		txManager:     txManager,
		orderRepo:     orderRepo,
		equipmentRepo: equipmentRepo,
		bus:           bus,
		logger:        logger,
	}
}

func (s *MaintenanceOrderService) GetMaintenanceOrders(ctx context.Context, params utils.QueryParams) ([]dto.MaintenanceOrderDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.orderRepo.GetMaintenanceOrders(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.MaintenanceOrderDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.MaintenanceOrderToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *MaintenanceOrderService) FindMaintenanceOrder(ctx context.Context, id uuid.UUID) (*dto.MaintenanceOrderDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindMaintenanceOrder(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.MaintenanceOrderToDTO(order), nil
}

// CreateMaintenanceOrder открывает заявку и переводит оборудование в
// inmaintenance. Перевод безусловный: прежний статус (включая decommissioned
// и lost) перезаписывается, местонахождение не трогается.
func (s *MaintenanceOrderService) CreateMaintenanceOrder(ctx context.Context, payload dto.CreateMaintenanceOrderDTO) (*dto.MaintenanceOrderDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipmentID, err := utils.ParseUUID(payload.EquipmentID, "equipment_id")
	if err != nil {
		return nil, err
	}

	orderType := entities.MaintenanceOrderType(payload.Type)
	if !orderType.Valid() {
		return nil, apperrors.NewInvalidInputError("недопустимый тип заявки %q", payload.Type)
	}

	openedAt := time.Now()
	if payload.OpenedAt != nil {
		openedAt = *payload.OpenedAt
	}

	order := &entities.MaintenanceOrder{
		ID:             uuid.New(),
		OrganizationID: orgID,
		EquipmentID:    equipmentID,
		Type:           orderType,
		Status:         entities.MaintenanceStatusOpen,
		Description:    payload.Description.String,
		OpenedAt:       openedAt,
		ClosedAt:       nil,
	}
	if payload.NextDueAt.Valid {
		order.NextDueAt = &payload.NextDueAt.Time
	}

	var assetTag string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, orgID, equipmentID)
		if err != nil {
			return err
		}
		assetTag = equipment.AssetTag

		if err := s.orderRepo.CreateMaintenanceOrderTx(ctx, tx, order); err != nil {
			return err
		}

		pending, err := s.orderRepo.CountPendingForEquipmentTx(ctx, tx, orgID, equipmentID, nil)
		if err != nil {
			return err
		}

		newStatus := entities.DeriveEquipmentStatus(equipment.Status, pending)
		return s.equipmentRepo.UpdateEquipmentStateTx(ctx, tx, orgID, equipmentID, equipment.CurrentLocation, newStatus)
	})
	if err != nil {
		s.logger.Error("Ошибка при создании заявки на обслуживание",
			zap.String("equipmentId", equipmentID.String()),
			zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.MaintenanceOrderOpenedEvent{
		OrganizationID: orgID,
		EquipmentID:    equipmentID,
		OrderID:        order.ID,
		AssetTag:       assetTag,
		OrderType:      orderType,
	})

	return dto.MaintenanceOrderToDTO(order), nil
}

func (s *MaintenanceOrderService) UpdateMaintenanceOrder(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceOrderDTO) (*dto.MaintenanceOrderDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var order *entities.MaintenanceOrder
	var closedNow bool
	var assetTag string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err = s.orderRepo.FindMaintenanceOrderTx(ctx, tx, orgID, id)
		if err != nil {
			return err
		}

		wasPending := order.Status.IsPending()

		if payload.Type != nil {
			orderType := entities.MaintenanceOrderType(*payload.Type)
			if !orderType.Valid() {
				return apperrors.NewInvalidInputError("недопустимый тип заявки %q", *payload.Type)
			}
			order.Type = orderType
		}
		if payload.Description.Valid {
			order.Description = payload.Description.String
		}
		if payload.OpenedAt != nil {
			order.OpenedAt = *payload.OpenedAt
		}
		if payload.ClosedAt != nil {
			order.ClosedAt = payload.ClosedAt
		}
		if payload.NextDueAt.Valid {
			order.NextDueAt = &payload.NextDueAt.Time
		}

		if payload.Status != nil {
			newStatus := entities.MaintenanceOrderStatus(*payload.Status)
			if !newStatus.Valid() {
				return apperrors.NewInvalidInputError("недопустимый статус заявки %q", *payload.Status)
			}
			if !entities.MaintenanceStatusCanTransition(order.Status, newStatus) {
				return apperrors.NewInvalidInputError("переход статуса %s -> %s запрещён", order.Status, newStatus)
			}

			order.Status = newStatus
			switch {
			case newStatus.IsPending():
				// Возврат в open/inprogress всегда обнуляет closed_at,
				// даже если клиент прислал его в том же запросе.
				order.ClosedAt = nil
			case newStatus == entities.MaintenanceStatusClosed || newStatus == entities.MaintenanceStatusCancelled:
				if order.ClosedAt == nil {
					order.ClosedAt = utils.TimePtr(time.Now())
				}
				closedNow = wasPending
			}
		}

		if err := s.orderRepo.UpdateMaintenanceOrderTx(ctx, tx, order); err != nil {
			return err
		}

		if closedNow {
			assetTag, err = s.restoreEquipmentStatusTx(ctx, tx, orgID, order)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if closedNow {
		s.bus.Publish(ctx, events.MaintenanceOrderClosedEvent{
			OrganizationID: orgID,
			EquipmentID:    order.EquipmentID,
			OrderID:        order.ID,
			AssetTag:       assetTag,
			FinalStatus:    order.Status,
		})
	}

	return dto.MaintenanceOrderToDTO(order), nil
}

// SoftDeleteMaintenanceOrder помечает заявку удаленной. Удаление открытой
// заявки равносильно её закрытию для статуса оборудования.
func (s *MaintenanceOrderService) SoftDeleteMaintenanceOrder(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	var order *entities.MaintenanceOrder
	var assetTag string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err = s.orderRepo.FindMaintenanceOrderTx(ctx, tx, orgID, id)
		if err != nil {
			return err
		}

		if err := s.orderRepo.SoftDeleteMaintenanceOrderTx(ctx, tx, orgID, id); err != nil {
			return err
		}

		if order.Status.IsPending() {
			assetTag, err = s.restoreEquipmentStatusTx(ctx, tx, orgID, order)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if order.Status.IsPending() {
		s.bus.Publish(ctx, events.MaintenanceOrderClosedEvent{
			OrganizationID: orgID,
			EquipmentID:    order.EquipmentID,
			OrderID:        order.ID,
			AssetTag:       assetTag,
			FinalStatus:    entities.MaintenanceStatusClosed,
		})
	}
	return nil
}

// restoreEquipmentStatusTx — проверка восстановления после закрытия заявки:
// если оборудование в inmaintenance и других незакрытых заявок не осталось,
// статус становится available. Никакой другой статус не восстанавливается:
// custody-статус до обслуживания не хранится.
func (s *MaintenanceOrderService) restoreEquipmentStatusTx(ctx context.Context, tx pgx.Tx, orgID uuid.UUID, order *entities.MaintenanceOrder) (string, error) {
	equipment, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, orgID, order.EquipmentID)
	if err != nil {
		// Оборудование могло быть удалено независимо от заявок.
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	if equipment.Status != entities.EquipmentStatusInMaintenance {
		return equipment.AssetTag, nil
	}

	pending, err := s.orderRepo.CountPendingForEquipmentTx(ctx, tx, orgID, order.EquipmentID, &order.ID)
	if err != nil {
		return "", err
	}

	newStatus := entities.DeriveEquipmentStatus(entities.EquipmentStatusAvailable, pending)
	if newStatus == equipment.Status {
		return equipment.AssetTag, nil
	}
	return equipment.AssetTag, s.equipmentRepo.UpdateEquipmentStateTx(ctx, tx, orgID, order.EquipmentID, equipment.CurrentLocation, newStatus)
}
