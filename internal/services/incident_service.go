package services

import (
	"context"
	"errors"

	"github.com/Bullfrogs2000/webdev-rest/internal/database"
	"github.com/Bullfrogs2000/webdev-rest/internal/models"
	"github.com/Bullfrogs2000/webdev-rest/internal/query"
)

// Business outcomes of incident mutations, distinct from store failures.
var (
	// ErrCaseExists is returned by CreateIncident when the case number
	// is already present.
	ErrCaseExists = errors.New("case number already exists")
	// ErrCaseNotFound is returned by DeleteIncident when no incident
	// has the given case number.
	ErrCaseNotFound = errors.New("case number does not exist")
)

// IncidentService defines the read and mutation operations on crime
// incidents. Mutation is create-or-delete only; there is no update.
type IncidentService interface {
	// ListIncidents returns incidents newest first, restricted by the
	// filter and capped at its limit, with the stored date_time split
	// back into date and time parts.
	ListIncidents(ctx context.Context, f query.IncidentFilter) ([]models.IncidentResponse, error)

	// CreateIncident inserts a new incident after checking that the
	// case number is not taken, returning ErrCaseExists if it is.
	CreateIncident(ctx context.Context, req *models.IncidentRequest) error

	// DeleteIncident removes the incident with the given case number,
	// returning ErrCaseNotFound when no such row exists.
	DeleteIncident(ctx context.Context, caseNumber string) error
}

// incidentService is the concrete implementation of IncidentService.
type incidentService struct {
	gw *database.Gateway
}

// NewIncidentService injects the data access gateway and returns an
// IncidentService instance ready for use.
func NewIncidentService(gw *database.Gateway) IncidentService {
	return &incidentService{gw: gw}
}

func (s *incidentService) ListIncidents(ctx context.Context, f query.IncidentFilter) ([]models.IncidentResponse, error) {
	sql, args := query.Incidents(f)

	var rows []models.IncidentRow
	if err := s.gw.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}

	out := make([]models.IncidentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToResponse())
	}
	return out, nil
}

// exists reports whether an incident with the case number is stored.
func (s *incidentService) exists(ctx context.Context, caseNumber string) (bool, error) {
	var found []string
	err := s.gw.Select(ctx, &found,
		"SELECT case_number FROM Incidents WHERE case_number = ? LIMIT 1", caseNumber)
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

func (s *incidentService) CreateIncident(ctx context.Context, req *models.IncidentRequest) error {
	caseNumber := string(req.CaseNumber)

	// Advisory uniqueness check; two racing creates are ultimately
	// stopped by the primary key constraint on case_number.
	taken, err := s.exists(ctx, caseNumber)
	if err != nil {
		return err
	}
	if taken {
		return ErrCaseExists
	}

	// date_time joins the supplied parts with a single space, exactly
	// as given.
	dateTime := req.Date + " " + req.Time

	_, err = s.gw.Exec(ctx,
		"INSERT INTO Incidents (case_number, date_time, code, incident, police_grid, neighborhood_number, block) VALUES (?, ?, ?, ?, ?, ?, ?)",
		caseNumber, dateTime, req.Code, req.Incident, req.PoliceGrid, req.NeighborhoodNumber, req.Block)
	return err
}

func (s *incidentService) DeleteIncident(ctx context.Context, caseNumber string) error {
	found, err := s.exists(ctx, caseNumber)
	if err != nil {
		return err
	}
	if !found {
		return ErrCaseNotFound
	}

	_, err = s.gw.Exec(ctx,
		"DELETE FROM Incidents WHERE case_number = ?", caseNumber)
	return err
}
