package utils

import (
	"context"

	"equipment-system/pkg/contextkeys"
	apperrors "equipment-system/pkg/errors"

	"github.com/google/uuid"
)

// OrganizationIDFromContext достает ID организации, записанный auth middleware.
func OrganizationIDFromContext(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctx.Value(contextkeys.OrganizationIDKey).(uuid.UUID)
	if !ok || orgID == uuid.Nil {
		return uuid.Nil, apperrors.ErrOrgIDNotFoundInContext
	}
	return orgID, nil
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}
