package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bullfrogs2000/webdev-rest/internal/query"
	"github.com/Bullfrogs2000/webdev-rest/internal/services"
)

// CodeController handles HTTP requests for the incident-type codes.
type CodeController struct {
	svc services.CodeService
}

// NewCodeController creates a new instance of CodeController.
func NewCodeController(svc services.CodeService) *CodeController {
	return &CodeController{svc: svc}
}

// Register registers the routes for the code controller.
func (ctrl *CodeController) Register(g *echo.Group) {
	g.GET("/codes", ctrl.GetCodes)
}

// GetCodes handles GET /codes. The optional ?code= parameter is a
// comma-separated code list; tokens that fail to parse are ignored.
func (ctrl *CodeController) GetCodes(c echo.Context) error {
	codes := query.IntList(c.QueryParam("code"))

	rows, err := ctrl.svc.ListCodes(c.Request().Context(), codes)
	if err != nil {
		c.Logger().Errorf("listing codes: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to retrieve codes")
	}

	return c.JSON(http.StatusOK, rows)
}
