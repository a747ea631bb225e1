package models

import (
	"encoding/json"
	"strings"
)

// Incident is the mutable entity: one recorded crime event, keyed by its
// externally supplied case number. date_time holds the combined
// "YYYY-MM-DD HH:MM" value; the remaining columns are nullable and stored
// exactly as supplied.
type Incident struct {
	CaseNumber         string  `gorm:"column:case_number;primaryKey" json:"case_number"`
	DateTime           string  `gorm:"column:date_time" json:"date_time"`
	Code               *int64  `gorm:"column:code" json:"code"`
	Incident           *string `gorm:"column:incident" json:"incident"`
	PoliceGrid         *int64  `gorm:"column:police_grid" json:"police_grid"`
	NeighborhoodNumber *int64  `gorm:"column:neighborhood_number" json:"neighborhood_number"`
	Block              *string `gorm:"column:block" json:"block"`
}

func (Incident) TableName() string {
	return "Incidents"
}

// CaseNumber accepts either a JSON string or a bare numeric token, since
// clients supply case numbers both ways.
type CaseNumber string

func (c *CaseNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CaseNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = CaseNumber(n.String())
	return nil
}

// IncidentRequest is the JSON body of PUT /new-incident. Optional fields
// are pointers so that absent values pass through to storage as NULL.
type IncidentRequest struct {
	CaseNumber         CaseNumber `json:"case_number"`
	Date               string     `json:"date"`
	Time               string     `json:"time"`
	Code               *int64     `json:"code"`
	Incident           *string    `json:"incident"`
	PoliceGrid         *int64     `json:"police_grid"`
	NeighborhoodNumber *int64     `json:"neighborhood_number"`
	Block              *string    `json:"block"`
}

// DeleteIncidentRequest is the JSON body of DELETE /remove-incident.
type DeleteIncidentRequest struct {
	CaseNumber CaseNumber `json:"case_number"`
}

// IncidentRow is the scan target for the incidents listing query.
type IncidentRow struct {
	CaseNumber         string  `gorm:"column:case_number"`
	DateTime           string  `gorm:"column:date_time"`
	Code               *int64  `gorm:"column:code"`
	Incident           *string `gorm:"column:incident"`
	PoliceGrid         *int64  `gorm:"column:police_grid"`
	NeighborhoodNumber *int64  `gorm:"column:neighborhood_number"`
	Block              *string `gorm:"column:block"`
}

// IncidentResponse is one element of the GET /incidents JSON array, with
// the stored composite date_time split back into its date and time parts.
type IncidentResponse struct {
	CaseNumber         string  `json:"case_number"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Code               *int64  `json:"code"`
	Incident           *string `json:"incident"`
	PoliceGrid         *int64  `json:"police_grid"`
	NeighborhoodNumber *int64  `json:"neighborhood_number"`
	Block              *string `json:"block"`
}

// ToResponse splits the composite date_time on its first space. A value
// without a time part yields an empty time.
func (r IncidentRow) ToResponse() IncidentResponse {
	date, timePart, _ := strings.Cut(r.DateTime, " ")
	return IncidentResponse{
		CaseNumber:         r.CaseNumber,
		Date:               date,
		Time:               timePart,
		Code:               r.Code,
		Incident:           r.Incident,
		PoliceGrid:         r.PoliceGrid,
		NeighborhoodNumber: r.NeighborhoodNumber,
		Block:              r.Block,
	}
}
