package database

import (
	"context"

	"mediavault/internal/domain/model"
)

type UserWriter interface {
	Write(ctx context.Context, user *model.User) error
}

type MediaWriter interface {
	Write(ctx context.Context, media *model.Media) error
}
