package entity

import "time"

// AcceptedFile is a local file that passed the orchestrator's type and
// size policy and may be handed to the transport.
type AcceptedFile struct {
	Path string
	Name string
	Size int64
	MIME string
	Kind string // "image" or "video"
}

// UploadedAssetDescriptor is what the transport reports back after a
// successful upload, ready to be submitted as a media record.
type UploadedAssetDescriptor struct {
	URL          string
	ThumbnailURL string
	Name         string
	Size         int64
	UploadedAt   time.Time
}
