package abstraction

import "mediavault/internal/domain/entity"

type Issuer interface {
	Issue() (entity.UploadAuthorization, error)
}
