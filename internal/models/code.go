package models

// Code maps a numeric incident classification code to its
// human-readable incident type label. Immutable reference data.
type Code struct {
	Code         int64  `gorm:"column:code;primaryKey" json:"code"`
	IncidentType string `gorm:"column:incident_type" json:"incident_type"`
}

func (Code) TableName() string {
	return "Codes"
}

// CodeRow is the read projection served by GET /codes, with the
// incident_type column aliased to "type".
type CodeRow struct {
	Code int64  `gorm:"column:code" json:"code"`
	Type string `gorm:"column:type" json:"type"`
}
