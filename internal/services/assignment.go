package services

import (
	"context"
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

type AssignmentServiceInterface interface {
	GetAssignments(ctx context.Context, params utils.QueryParams) ([]dto.AssignmentDTO, uint64, error)
	FindAssignment(ctx context.Context, id uuid.UUID) (*dto.AssignmentDTO, error)
	CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*dto.AssignmentDTO, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, payload dto.UpdateAssignmentDTO) (*dto.AssignmentDTO, error)
	SoftDeleteAssignment(ctx context.Context, id uuid.UUID) error
}

// AssignmentService — служба записи назначений: фиксирует событие перемещения
// и в той же транзакции продвигает производное состояние оборудования вперед.
type AssignmentService struct {
	txManager      repositories.TxManagerInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	bus            *eventbus.Bus
	logger         *zap.Logger
}

func NewAssignmentService(
	txManager repositories.TxManagerInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		txManager:      txManager,
		assignmentRepo: assignmentRepo,
		equipmentRepo:  equipmentRepo,
		bus:            bus,
		logger:         logger,
	}
}

func (s *AssignmentService) GetAssignments(ctx context.Context, params utils.QueryParams) ([]dto.AssignmentDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.assignmentRepo.GetAssignments(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.AssignmentDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.AssignmentToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *AssignmentService) FindAssignment(ctx context.Context, id uuid.UUID) (*dto.AssignmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindAssignment(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.AssignmentToDTO(assignment), nil
}

// CreateAssignment записывает checkout/checkin/transfer. Снимок from_location
// берется из оборудования ДО обновления, так что журнал остается корректной
// историей переходов. Вставка записи и обновление оборудования идут в одной
// транзакции: сбой между ними не может рассинхронизировать журнал и состояние.
func (s *AssignmentService) CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*dto.AssignmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipmentID, err := utils.ParseUUID(payload.EquipmentID, "equipment_id")
	if err != nil {
		return nil, err
	}

	action := entities.AssignmentAction(payload.Action)
	if !action.Valid() {
		return nil, apperrors.NewInvalidInputError("недопустимое действие назначения %q", payload.Action)
	}

	toLocation, err := dto.LocationFromInput(payload.ToLocation)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("неверный формат идентификатора ref_id местонахождения")
	}
	if !toLocation.Type.Valid() {
		return nil, apperrors.NewInvalidInputError("недопустимый тип местонахождения %q", payload.ToLocation.Type)
	}

	effectiveAt := time.Now()
	if payload.EffectiveAt != nil {
		effectiveAt = *payload.EffectiveAt
	}

	var assignment *entities.Assignment

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentTx(ctx, tx, orgID, equipmentID)
		if err != nil {
			return err
		}

		fromLocation := equipment.CurrentLocation
		if fromLocation.Type == "" {
			fromLocation = entities.StockLocation()
		}

		// Преднамеренно без проверки на inmaintenance/decommissioned:
		// действие всегда исполняется, custody-статус перезаписывается.
		newStatus := entities.StatusAfterAssignment(equipment.Status, action)

		assignment = &entities.Assignment{
			ID:             uuid.New(),
			OrganizationID: orgID,
			EquipmentID:    equipmentID,
			Action:         action,
			FromLocation:   fromLocation,
			ToLocation:     toLocation,
			EffectiveAt:    effectiveAt,
			Notes:          payload.Notes,
		}

		if err := s.assignmentRepo.CreateAssignmentTx(ctx, tx, assignment); err != nil {
			return err
		}

		if err := s.equipmentRepo.UpdateEquipmentStateTx(ctx, tx, orgID, equipmentID, toLocation, newStatus); err != nil {
			return err
		}

		s.bus.Publish(ctx, events.EquipmentMovedEvent{
			OrganizationID: orgID,
			EquipmentID:    equipmentID,
			AssetTag:       equipment.AssetTag,
			Action:         action,
			ToLocation:     toLocation,
		})
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при создании назначения",
			zap.String("equipmentId", equipmentID.String()),
			zap.String("action", string(action)),
			zap.Error(err))
		return nil, err
	}

	return dto.AssignmentToDTO(assignment), nil
}

func (s *AssignmentService) UpdateAssignment(ctx context.Context, id uuid.UUID, payload dto.UpdateAssignmentDTO) (*dto.AssignmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindAssignment(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.EffectiveAt != nil {
		assignment.EffectiveAt = *payload.EffectiveAt
	}
	if payload.Notes != nil {
		assignment.Notes = *payload.Notes
	}

	if err := s.assignmentRepo.UpdateAssignment(ctx, orgID, id, assignment); err != nil {
		return nil, err
	}
	return dto.AssignmentToDTO(assignment), nil
}

// SoftDeleteAssignment помечает запись журнала удаленной. Состояние
// оборудования, которое эта запись когда-то вызвала, сознательно НЕ
// откатывается: журнал — история, а не источник отмены.
func (s *AssignmentService) SoftDeleteAssignment(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.assignmentRepo.SoftDeleteAssignment(ctx, orgID, id)
}
