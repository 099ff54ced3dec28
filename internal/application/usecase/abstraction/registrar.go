package abstraction

import "context"

type Registrar interface {
	Register(ctx context.Context, email, password string) error
}
