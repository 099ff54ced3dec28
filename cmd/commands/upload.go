package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mediavault/config"
	"mediavault/internal/application/usecase"
	"mediavault/internal/domain/dto"
	"mediavault/internal/infrastructure/api"
	"mediavault/internal/infrastructure/cdn"
	"mediavault/pkg/logger"
)

// HandleUpload is the client upload orchestrator end to end: validate
// the local file, log in, fetch a signed authorization, stream the file
// to the CDN with progress, then record the uploaded asset.
func HandleUpload(args []string) {
	if len(args) < 4 {
		ExitOnError(errors.New("usage: mediavault upload <config.yml> <file> [flags]"))
	}

	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	title := fs.String("title", "", "media record title")
	description := fs.String("description", "", "media record description")
	kind := fs.String("kind", "image", "declared file category: image or video")
	if err := fs.Parse(args[4:]); err != nil {
		ExitOnError(err)
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	apiClient := api.New(cfg.API)
	transport := cdn.New(cfg.CDN)
	orchestrator := usecase.NewUploader(apiClient, transport, cfg.Client.MaxFileSizeInMB<<20)

	// Ctrl-C aborts the in-flight upload; there is no mid-flight resume.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accepted, err := orchestrator.SelectFile(args[3], *kind)
	if err != nil {
		ExitOnError(err)
	}

	if err := apiClient.Login(ctx, *email, *password); err != nil {
		ExitOnError(err)
	}

	descriptor, err := orchestrator.Upload(ctx, accepted, func(percent int) {
		fmt.Printf("\ruploading %s: %3d%%", accepted.Name, percent)
	})
	fmt.Println()
	if err != nil {
		ExitOnError(err)
	}

	thumbnail := descriptor.ThumbnailURL
	if thumbnail == "" {
		thumbnail = descriptor.URL
	}

	created, err := apiClient.CreateMedia(ctx, dto.CreateMediaRequest{
		Title:        *title,
		Description:  *description,
		MediaURL:     descriptor.URL,
		ThumbnailURL: thumbnail,
	})
	if err != nil {
		ExitOnError(err)
	}

	fmt.Printf("uploaded %s (%d bytes)\nmedia record %q created at %s\n",
		descriptor.Name, descriptor.Size, created.Title, created.MediaURL)
}
