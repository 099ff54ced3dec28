package usecase

import (
	"context"

	"mediavault/internal/domain/model"
	"mediavault/internal/domain/repository/database"
)

type MediaLister struct {
	lister database.MediaLister
}

func NewMediaLister(lister database.MediaLister) *MediaLister {
	return &MediaLister{lister: lister}
}

func (l *MediaLister) ListAll(ctx context.Context) ([]model.Media, error) {
	media, err := l.lister.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if media == nil {
		media = []model.Media{}
	}

	return media, nil
}
