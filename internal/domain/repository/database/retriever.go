package database

import (
	"context"
	"errors"

	"mediavault/internal/domain/model"
)

// ErrUserNotFound is returned when no user matches the lookup. Callers
// decide what absence means; it is not part of the user-facing taxonomy.
var ErrUserNotFound = errors.New("user not found")

type UserRetriever interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
