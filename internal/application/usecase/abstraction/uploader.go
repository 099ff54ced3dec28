package abstraction

import (
	"context"

	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository/transport"
)

type Uploader interface {
	SelectFile(path, kind string) (entity.AcceptedFile, error)
	Upload(ctx context.Context, file entity.AcceptedFile,
		onProgress transport.ProgressFunc) (entity.UploadedAssetDescriptor, error)
}
