package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
	"mediavault/pkg/logger"
)

type UserWriter struct {
	db *Database
}

func NewUserWriter(db *Database) *UserWriter {
	return &UserWriter{db: db}
}

func (w *UserWriter) Write(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	coll := w.db.Client.Database(w.db.DBName).Collection(UserCollection)

	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerr.Wrap(domainerr.KindDuplicate, "email already registered", err)
		}

		logger.Error("user insert failed", "err", err)

		return domainerr.Wrap(domainerr.KindStorage, "failed to create user", err)
	}

	return nil
}
