package dto

import "mediavault/internal/domain/model"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateMediaRequest mirrors the media record shape; Controls is a
// pointer so an omitted field can still default to true.
type CreateMediaRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	MediaURL       string               `json:"mediaURL"`
	ThumbnailURL   string               `json:"thumbnailURL"`
	Controls       *bool                `json:"controls,omitempty"`
	Transformation model.Transformation `json:"transformation,omitempty"`
}

type AnalyzeRequest struct {
	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
}
