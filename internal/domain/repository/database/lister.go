package database

import (
	"context"

	"mediavault/internal/domain/model"
)

type MediaLister interface {
	// ListAll returns every media record, newest first. An empty store
	// yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]model.Media, error)
}
