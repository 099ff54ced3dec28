package abstraction

import (
	"context"

	"mediavault/internal/domain/dto"
)

type Analyzer interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (dto.AnalyzeResponse, error)
}
