package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
	"mediavault/pkg/logger"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

// Write persists media as a single insert. The collection's unique
// indexes on title, media_url and thumbnail_url make the duplicate check
// atomic with the write.
func (w *MediaWriter) Write(ctx context.Context, media *model.Media) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now()
	media.CreatedAt = now
	media.UpdatedAt = now

	coll := w.db.Client.Database(w.db.DBName).Collection(MediaCollection)

	res, err := coll.InsertOne(ctx, media)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerr.Wrap(domainerr.KindDuplicate,
				"a record with the same title, media URL or thumbnail URL already exists", err)
		}

		logger.Error("media insert failed", "err", err)

		return domainerr.Wrap(domainerr.KindStorage, "failed to create media record", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		media.ID = id
	}

	logger.Info("media record stored", "id", media.ID.Hex(), "title", media.Title)

	return nil
}
