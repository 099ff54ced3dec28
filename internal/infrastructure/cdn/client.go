package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository/transport"
	"mediavault/pkg/logger"
)

// Client streams one file to the CDN's upload endpoint, carrying the
// signed authorization parameters as form fields the way the CDN's own
// SDKs do.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

type uploadResponse struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
}

func (c *Client) Upload(ctx context.Context, file entity.AcceptedFile, auth entity.UploadAuthorization,
	onProgress transport.ProgressFunc,
) (entity.UploadedAssetDescriptor, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return entity.UploadedAssetDescriptor{}, domainerr.Wrap(domainerr.KindInvalidRequest,
			"cannot open file for upload", err)
	}
	defer f.Close()

	body, contentType := c.multipartBody(file, auth, newProgressReader(f, file.Size, onProgress))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadEndpoint, body)
	if err != nil {
		return entity.UploadedAssetDescriptor{}, domainerr.Wrap(domainerr.KindInvalidRequest,
			"cannot build upload request", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entity.UploadedAssetDescriptor{}, domainerr.Wrap(domainerr.KindAborted,
				"upload aborted", err)
		}

		return entity.UploadedAssetDescriptor{}, domainerr.Wrap(domainerr.KindNetwork,
			"upload failed: network error", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return entity.UploadedAssetDescriptor{}, domainerr.New(domainerr.KindServer,
			fmt.Sprintf("upload failed: CDN returned %d", resp.StatusCode))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return entity.UploadedAssetDescriptor{}, domainerr.New(domainerr.KindInvalidRequest,
			fmt.Sprintf("upload rejected: CDN returned %d", resp.StatusCode))
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return entity.UploadedAssetDescriptor{}, domainerr.Wrap(domainerr.KindServer,
			"upload failed: unreadable CDN response", err)
	}

	logger.Info("upload complete", "name", result.Name, "size", result.Size)

	return entity.UploadedAssetDescriptor{
		URL:          result.URL,
		ThumbnailURL: result.ThumbnailURL,
		Name:         result.Name,
		Size:         result.Size,
		UploadedAt:   time.Now(),
	}, nil
}

// multipartBody assembles the form on a pipe so the file is streamed,
// never buffered whole in memory.
func (c *Client) multipartBody(file entity.AcceptedFile, auth entity.UploadAuthorization,
	content io.Reader,
) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		fields := map[string]string{
			"fileName":          file.Name,
			"publicKey":         auth.PublicKey,
			"signature":         auth.Signature,
			"expire":            strconv.FormatInt(auth.Expire, 10),
			"token":             auth.Token,
			"useUniqueFileName": "true",
		}
		for name, value := range fields {
			if err := mw.WriteField(name, value); err != nil {
				pw.CloseWithError(err)

				return
			}
		}

		part, err := mw.CreateFormFile("file", file.Name)
		if err != nil {
			pw.CloseWithError(err)

			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)

			return
		}

		pw.CloseWithError(mw.Close())
	}()

	return pr, mw.FormDataContentType()
}
