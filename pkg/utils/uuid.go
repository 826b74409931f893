package utils

import (
	apperrors "equipment-system/pkg/errors"

	"github.com/google/uuid"
)

// ParseUUID разбирает идентификатор до любого обращения к БД.
// Некорректный формат — ошибка клиента, а не "не найдено".
func ParseUUID(raw string, paramName string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidInputError("неверный формат идентификатора %q", paramName)
	}
	return id, nil
}
