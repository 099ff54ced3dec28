package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository/transport"
)

// DefaultMaxFileSize is the upload policy ceiling.
const DefaultMaxFileSize = 100 << 20 // 100 MB

const (
	KindImage = "image"
	KindVideo = "video"
)

// Uploader is the client-side orchestrator: it validates a local file
// against the type/size policy, fetches a signed authorization and
// drives the CDN transport, relaying its progress signals.
type Uploader struct {
	auth        transport.AuthorizationSource
	transport   transport.Uploader
	maxFileSize int64
}

func NewUploader(auth transport.AuthorizationSource, uploader transport.Uploader, maxFileSize int64) *Uploader {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}

	return &Uploader{
		auth:        auth,
		transport:   uploader,
		maxFileSize: maxFileSize,
	}
}

// SelectFile checks the file at path against the declared category and
// the size ceiling. Any violation short-circuits: an error comes back
// and nothing is accepted for upload.
func (u *Uploader) SelectFile(path, kind string) (entity.AcceptedFile, error) {
	if kind != KindImage && kind != KindVideo {
		return entity.AcceptedFile{},
			domainerr.New(domainerr.KindValidation, "declared type must be image or video")
	}

	info, err := os.Stat(path)
	if err != nil {
		return entity.AcceptedFile{},
			domainerr.Wrap(domainerr.KindValidation, "file is not readable", err)
	}

	if info.Size() > u.maxFileSize {
		return entity.AcceptedFile{}, domainerr.New(domainerr.KindValidation,
			fmt.Sprintf("file exceeds the %d MB limit", u.maxFileSize>>20))
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return entity.AcceptedFile{},
			domainerr.Wrap(domainerr.KindValidation, "file type could not be detected", err)
	}

	if !strings.HasPrefix(mime.String(), kind+"/") {
		return entity.AcceptedFile{}, domainerr.New(domainerr.KindValidation,
			fmt.Sprintf("please provide a valid %s file, got %s", kind, mime.String()))
	}

	return entity.AcceptedFile{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		MIME: mime.String(),
		Kind: kind,
	}, nil
}

// Upload fetches an authorization and streams file through the
// transport. The authorization step fails fast; progress callbacks are
// clamped so consumers always observe a non-decreasing sequence.
func (u *Uploader) Upload(ctx context.Context, file entity.AcceptedFile,
	onProgress transport.ProgressFunc,
) (entity.UploadedAssetDescriptor, error) {
	auth, err := u.auth.FetchUploadAuthorization(ctx)
	if err != nil {
		return entity.UploadedAssetDescriptor{}, err
	}

	return u.transport.Upload(ctx, file, auth, monotonic(onProgress))
}

// monotonic drops any percentage below the highest seen so far.
func monotonic(report transport.ProgressFunc) transport.ProgressFunc {
	if report == nil {
		return nil
	}

	last := -1

	return func(percent int) {
		if percent < last {
			return
		}
		last = percent
		report(percent)
	}
}
