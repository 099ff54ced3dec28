package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mediavault/internal/domain/domainerr"
)

// Default transformation applied to every stored asset, portrait
// 1080x1920 as the upload pipeline expects.
const (
	DefaultWidth   = 1080
	DefaultHeight  = 1920
	DefaultQuality = 100

	MinQuality = 1
	MaxQuality = 100
)

type Transformation struct {
	Height  int `bson:"height" json:"height"`
	Width   int `bson:"width" json:"width"`
	Quality int `bson:"quality,omitempty" json:"quality,omitempty"`
}

// Media is one persisted metadata record describing an uploaded image or
// video asset. Title, MediaURL and ThumbnailURL are each globally unique,
// enforced by the store's indexes.
type Media struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	MediaURL       string             `bson:"media_url" json:"mediaURL"`
	ThumbnailURL   string             `bson:"thumbnail_url" json:"thumbnailURL"`
	Controls       bool               `bson:"controls" json:"controls"`
	Transformation Transformation     `bson:"transformation" json:"transformation"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (m *Media) Validate() error {
	switch {
	case m.Title == "":
		return domainerr.New(domainerr.KindValidation, "title is required")
	case m.Description == "":
		return domainerr.New(domainerr.KindValidation, "description is required")
	case m.MediaURL == "":
		return domainerr.New(domainerr.KindValidation, "mediaURL is required")
	case m.ThumbnailURL == "":
		return domainerr.New(domainerr.KindValidation, "thumbnailURL is required")
	}

	if q := m.Transformation.Quality; q != 0 && (q < MinQuality || q > MaxQuality) {
		return domainerr.New(domainerr.KindValidation, "transformation quality must be between 1 and 100")
	}

	return nil
}

// ApplyDefaults fills the policy defaults for a record about to be
// persisted: controls on, 1080x1920, quality maxed when unspecified.
func (m *Media) ApplyDefaults(controlsSet bool) {
	if !controlsSet {
		m.Controls = true
	}
	if m.Transformation.Width == 0 {
		m.Transformation.Width = DefaultWidth
	}
	if m.Transformation.Height == 0 {
		m.Transformation.Height = DefaultHeight
	}
	if m.Transformation.Quality == 0 {
		m.Transformation.Quality = DefaultQuality
	}
}
