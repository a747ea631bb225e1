package services

import (
	"context"

	"github.com/Bullfrogs2000/webdev-rest/internal/database"
	"github.com/Bullfrogs2000/webdev-rest/internal/models"
	"github.com/Bullfrogs2000/webdev-rest/internal/query"
)

// CodeService defines read operations over the incident-type
// classification codes.
type CodeService interface {
	// ListCodes returns codes ascending by code. An empty or nil codes
	// argument returns every row; otherwise only codes in the set.
	ListCodes(ctx context.Context, codes []int64) ([]models.CodeRow, error)
}

// codeService is the concrete implementation of CodeService.
type codeService struct {
	gw *database.Gateway
}

// NewCodeService injects the data access gateway and returns a
// CodeService instance ready for use.
func NewCodeService(gw *database.Gateway) CodeService {
	return &codeService{gw: gw}
}

func (s *codeService) ListCodes(ctx context.Context, codes []int64) ([]models.CodeRow, error) {
	sql, args := query.Codes(codes)

	// Non-nil so a zero-match result serializes as an empty JSON array.
	rows := make([]models.CodeRow, 0)
	if err := s.gw.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
