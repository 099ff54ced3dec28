package abstraction

import (
	"context"

	"mediavault/internal/domain/entity"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
}
