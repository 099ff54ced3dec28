package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
	"mediavault/pkg/logger"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

func (l *MediaLister) ListAll(ctx context.Context) ([]model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		logger.Error("media listing failed", "err", err)

		return nil, domainerr.Wrap(domainerr.KindStorage, "failed to list media records", err)
	}
	defer cursor.Close(ctx)

	media := []model.Media{}
	if err = cursor.All(ctx, &media); err != nil {
		logger.Error("media decoding failed", "err", err)

		return nil, domainerr.Wrap(domainerr.KindStorage, "failed to decode media records", err)
	}

	return media, nil
}
