package transport

import (
	"context"

	"mediavault/internal/domain/entity"
)

// ProgressFunc receives advisory 0-100 percentages. Calls may be dropped
// or coalesced by the consumer.
type ProgressFunc func(percent int)

// Uploader is the external CDN transport. The implementation performs
// the actual network upload; chunking and retry are its business.
type Uploader interface {
	Upload(ctx context.Context, file entity.AcceptedFile, auth entity.UploadAuthorization,
		onProgress ProgressFunc) (entity.UploadedAssetDescriptor, error)
}

// AuthorizationSource hands out one signed upload authorization per
// call, as the server's issuer does.
type AuthorizationSource interface {
	FetchUploadAuthorization(ctx context.Context) (entity.UploadAuthorization, error)
}
