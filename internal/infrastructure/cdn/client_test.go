package cdn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
)

func tempFile(t *testing.T, size int) entity.AcceptedFile {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))

	return entity.AcceptedFile{
		Path: path,
		Name: "clip.mp4",
		Size: int64(size),
		MIME: "video/mp4",
		Kind: "video",
	}
}

func testAuth() entity.UploadAuthorization {
	return entity.UploadAuthorization{
		Signature: "deadbeef",
		Expire:    1700000000,
		Token:     "tok-1",
		PublicKey: "public_test_key",
	}
}

func TestUpload(t *testing.T) {
	var gotFields map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			gotFields[name] = values[0]
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/clip.mp4",` +
			`"thumbnailUrl":"https://cdn.example.com/tr:n-thumb/clip.mp4",` +
			`"name":"clip.mp4","size":4096}`))
	}))
	defer srv.Close()

	client := New(Config{UploadEndpoint: srv.URL, Timeout: 5000})

	var progress []int
	descriptor, err := client.Upload(context.Background(), tempFile(t, 4096), testAuth(),
		func(percent int) { progress = append(progress, percent) })
	require.NoError(t, err)

	require.Equal(t, "https://cdn.example.com/clip.mp4", descriptor.URL)
	require.Equal(t, "https://cdn.example.com/tr:n-thumb/clip.mp4", descriptor.ThumbnailURL)
	require.Equal(t, int64(4096), descriptor.Size)
	require.False(t, descriptor.UploadedAt.IsZero())

	require.Equal(t, "deadbeef", gotFields["signature"])
	require.Equal(t, "1700000000", gotFields["expire"])
	require.Equal(t, "tok-1", gotFields["token"])
	require.Equal(t, "public_test_key", gotFields["publicKey"])
	require.Equal(t, "clip.mp4", gotFields["fileName"])

	require.NotEmpty(t, progress)
	require.Equal(t, 100, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		require.Greater(t, progress[i], progress[i-1])
	}
}

func TestUploadMapsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad signature", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := New(Config{UploadEndpoint: srv.URL, Timeout: 5000})

	_, err := client.Upload(context.Background(), tempFile(t, 16), testAuth(), nil)
	require.True(t, domainerr.IsKind(err, domainerr.KindInvalidRequest))
}

func TestUploadMapsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(Config{UploadEndpoint: srv.URL, Timeout: 5000})

	_, err := client.Upload(context.Background(), tempFile(t, 16), testAuth(), nil)
	require.True(t, domainerr.IsKind(err, domainerr.KindServer))
}

func TestUploadMapsNetworkError(t *testing.T) {
	client := New(Config{UploadEndpoint: "http://127.0.0.1:1", Timeout: 1000})

	_, err := client.Upload(context.Background(), tempFile(t, 16), testAuth(), nil)
	require.True(t, domainerr.IsKind(err, domainerr.KindNetwork))
}

func TestUploadMapsAbort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(Config{UploadEndpoint: srv.URL, Timeout: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Upload(ctx, tempFile(t, 16), testAuth(), nil)
	require.True(t, domainerr.IsKind(err, domainerr.KindAborted))
}
