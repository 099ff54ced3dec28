package usecase

import (
	"context"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
)

// Analyzer produces tags and a description for an uploaded asset. This
// implementation is a deterministic placeholder; a model-backed client
// can replace it behind the same interface.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(_ context.Context, req dto.AnalyzeRequest) (dto.AnalyzeResponse, error) {
	if req.MediaURL == "" || req.MediaType == "" {
		return dto.AnalyzeResponse{},
			domainerr.New(domainerr.KindValidation, "mediaUrl and mediaType are required")
	}

	switch req.MediaType {
	case "image":
		return dto.AnalyzeResponse{
			Tags:        []string{"photo", "uploaded"},
			Description: "An uploaded image awaiting enrichment.",
		}, nil
	case "video":
		return dto.AnalyzeResponse{
			Tags:        []string{"clip", "uploaded"},
			Description: "An uploaded video awaiting enrichment.",
		}, nil
	default:
		return dto.AnalyzeResponse{},
			domainerr.New(domainerr.KindValidation, "mediaType must be image or video")
	}
}
