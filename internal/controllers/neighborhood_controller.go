package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bullfrogs2000/webdev-rest/internal/query"
	"github.com/Bullfrogs2000/webdev-rest/internal/services"
)

// NeighborhoodController handles HTTP requests for the planning
// district reference data.
type NeighborhoodController struct {
	svc services.NeighborhoodService
}

// NewNeighborhoodController creates a new instance of NeighborhoodController.
func NewNeighborhoodController(svc services.NeighborhoodService) *NeighborhoodController {
	return &NeighborhoodController{svc: svc}
}

// Register registers the routes for the neighborhood controller.
func (ctrl *NeighborhoodController) Register(g *echo.Group) {
	g.GET("/neighborhoods", ctrl.GetNeighborhoods)
}

// GetNeighborhoods handles GET /neighborhoods with an optional
// comma-separated ?id= filter.
func (ctrl *NeighborhoodController) GetNeighborhoods(c echo.Context) error {
	ids := query.IntList(c.QueryParam("id"))

	rows, err := ctrl.svc.ListNeighborhoods(c.Request().Context(), ids)
	if err != nil {
		c.Logger().Errorf("listing neighborhoods: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to retrieve neighborhoods")
	}

	return c.JSON(http.StatusOK, rows)
}
