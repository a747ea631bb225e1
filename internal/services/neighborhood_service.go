package services

import (
	"context"

	"github.com/Bullfrogs2000/webdev-rest/internal/database"
	"github.com/Bullfrogs2000/webdev-rest/internal/models"
	"github.com/Bullfrogs2000/webdev-rest/internal/query"
)

// NeighborhoodService defines read operations over the planning
// district reference data.
type NeighborhoodService interface {
	// ListNeighborhoods returns neighborhoods ascending by id,
	// optionally restricted to the supplied id set.
	ListNeighborhoods(ctx context.Context, ids []int64) ([]models.NeighborhoodRow, error)
}

// neighborhoodService is the concrete implementation of NeighborhoodService.
type neighborhoodService struct {
	gw *database.Gateway
}

// NewNeighborhoodService injects the data access gateway and returns a
// NeighborhoodService instance ready for use.
func NewNeighborhoodService(gw *database.Gateway) NeighborhoodService {
	return &neighborhoodService{gw: gw}
}

func (s *neighborhoodService) ListNeighborhoods(ctx context.Context, ids []int64) ([]models.NeighborhoodRow, error) {
	sql, args := query.Neighborhoods(ids)

	// Non-nil so a zero-match result serializes as an empty JSON array.
	rows := make([]models.NeighborhoodRow, 0)
	if err := s.gw.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
