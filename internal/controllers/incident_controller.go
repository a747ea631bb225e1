package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bullfrogs2000/webdev-rest/internal/models"
	"github.com/Bullfrogs2000/webdev-rest/internal/query"
	"github.com/Bullfrogs2000/webdev-rest/internal/services"
)

// IncidentController handles HTTP requests for crime incidents:
// the filtered listing plus the create and delete mutations.
type IncidentController struct {
	svc services.IncidentService
}

// NewIncidentController creates a new instance of IncidentController.
func NewIncidentController(svc services.IncidentService) *IncidentController {
	return &IncidentController{svc: svc}
}

// Register registers the routes for the incident controller.
func (ctrl *IncidentController) Register(g *echo.Group) {
	g.GET("/incidents", ctrl.GetIncidents)
	g.PUT("/new-incident", ctrl.CreateIncident)
	g.DELETE("/remove-incident", ctrl.DeleteIncident)
}

// GetIncidents handles GET /incidents. All filters are optional and
// combine with AND; rows come back newest first, capped at ?limit=
// (default 1000 when missing or unusable).
func (ctrl *IncidentController) GetIncidents(c echo.Context) error {
	filter := query.IncidentFilter{
		StartDate:     c.QueryParam("start_date"),
		EndDate:       c.QueryParam("end_date"),
		Codes:         query.IntList(c.QueryParam("code")),
		Grids:         query.IntList(c.QueryParam("grid")),
		Neighborhoods: query.IntList(c.QueryParam("neighborhood")),
		Limit:         query.Limit(c.QueryParam("limit")),
	}

	rows, err := ctrl.svc.ListIncidents(c.Request().Context(), filter)
	if err != nil {
		c.Logger().Errorf("listing incidents: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to retrieve incidents")
	}

	return c.JSON(http.StatusOK, rows)
}

// CreateIncident handles PUT /new-incident. case_number, date and time
// are required; everything else passes through to storage as supplied.
func (ctrl *IncidentController) CreateIncident(c echo.Context) error {
	var req models.IncidentRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	if req.CaseNumber == "" || req.Date == "" || req.Time == "" {
		return c.String(http.StatusBadRequest, "Missing required fields: case_number, date, time")
	}

	err := ctrl.svc.CreateIncident(c.Request().Context(), &req)
	switch {
	case errors.Is(err, services.ErrCaseExists):
		return c.String(http.StatusInternalServerError, "Case number already exists")
	case err != nil:
		c.Logger().Errorf("creating incident: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to create incident")
	}

	return c.String(http.StatusOK, "OK")
}

// DeleteIncident handles DELETE /remove-incident.
func (ctrl *IncidentController) DeleteIncident(c echo.Context) error {
	var req models.DeleteIncidentRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}

	if req.CaseNumber == "" {
		return c.String(http.StatusBadRequest, "Missing required field: case_number")
	}

	err := ctrl.svc.DeleteIncident(c.Request().Context(), string(req.CaseNumber))
	switch {
	case errors.Is(err, services.ErrCaseNotFound):
		return c.String(http.StatusInternalServerError, "Case number does not exist")
	case err != nil:
		c.Logger().Errorf("deleting incident: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to delete incident")
	}

	return c.String(http.StatusOK, "OK")
}
