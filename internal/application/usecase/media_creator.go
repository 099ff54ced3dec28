package usecase

import (
	"context"

	"mediavault/internal/domain/dto"
	"mediavault/internal/domain/model"
	"mediavault/internal/domain/repository/broker"
	"mediavault/internal/domain/repository/database"
	"mediavault/pkg/logger"
)

type MediaCreator struct {
	writer    database.MediaWriter
	publisher broker.Publisher
}

func NewMediaCreator(writer database.MediaWriter, publisher broker.Publisher) *MediaCreator {
	return &MediaCreator{
		writer:    writer,
		publisher: publisher,
	}
}

// Create validates and persists one media record as a single atomic
// write, then announces it on the stream for downstream enrichment.
// The record stays owner-less; creator is logged so the association is
// recoverable operationally.
func (c *MediaCreator) Create(ctx context.Context, req dto.CreateMediaRequest, creator string) (*model.Media, error) {
	media := &model.Media{
		Title:          req.Title,
		Description:    req.Description,
		MediaURL:       req.MediaURL,
		ThumbnailURL:   req.ThumbnailURL,
		Transformation: req.Transformation,
	}

	if req.Controls != nil {
		media.Controls = *req.Controls
	}
	media.ApplyDefaults(req.Controls != nil)

	if err := media.Validate(); err != nil {
		return nil, err
	}

	if err := c.writer.Write(ctx, media); err != nil {
		return nil, err
	}

	logger.Info("media record created", "title", media.Title, "creator", creator)

	// Enrichment is advisory: a failed publish never undoes the write.
	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, media.ID.Hex()); err != nil {
			logger.Error("failed to publish media-created event", "err", err)
		}
	}

	return media, nil
}
