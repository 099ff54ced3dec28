package usecase

import (
	"context"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/model"
	"mediavault/internal/domain/repository/database"
	"mediavault/pkg/logger"
)

type Registrar struct {
	retriever database.UserRetriever
	writer    database.UserWriter
}

func NewRegistrar(retriever database.UserRetriever, writer database.UserWriter) *Registrar {
	return &Registrar{
		retriever: retriever,
		writer:    writer,
	}
}

// Register stores a new user with a salted one-way hash of password.
// The pre-check gives a friendly duplicate error; the store's unique
// index on email closes the race between concurrent registrations.
func (r *Registrar) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domainerr.New(domainerr.KindValidation, "email and password are required")
	}

	if _, err := r.retriever.GetByEmail(ctx, email); err == nil {
		return domainerr.New(domainerr.KindDuplicate, "email already registered")
	}

	user := &model.User{Email: email}
	if err := user.SetPassword(password); err != nil {
		logger.Error("password hashing failed", "err", err)

		return domainerr.Wrap(domainerr.KindStorage, "failed to register user", err)
	}

	return r.writer.Write(ctx, user)
}
