package abstraction

import (
	"context"

	"mediavault/internal/domain/dto"
	"mediavault/internal/domain/model"
)

type MediaCreator interface {
	Create(ctx context.Context, req dto.CreateMediaRequest, creator string) (*model.Media, error)
}

type MediaLister interface {
	ListAll(ctx context.Context) ([]model.Media, error)
}
