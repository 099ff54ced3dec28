package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
	dbRepository "mediavault/internal/domain/repository/database"
	"mediavault/pkg/logger"
)

type UserRetriever struct {
	db *Database
}

func NewUserRetriever(db *Database) *UserRetriever {
	return &UserRetriever{db: db}
}

func (r *UserRetriever) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dbRepository.ErrUserNotFound
		}

		logger.Error("user lookup failed", "err", err)

		return nil, domainerr.Wrap(domainerr.KindStorage, "failed to look up user", err)
	}

	return &user, nil
}
