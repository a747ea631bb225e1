package models

// Neighborhood is a named planning district identified by its number.
// Immutable reference data.
type Neighborhood struct {
	Number int64  `gorm:"column:neighborhood_number;primaryKey" json:"neighborhood_number"`
	Name   string `gorm:"column:neighborhood_name" json:"neighborhood_name"`
}

func (Neighborhood) TableName() string {
	return "Neighborhoods"
}

// NeighborhoodRow is the read projection served by GET /neighborhoods,
// aliasing neighborhood_number/neighborhood_name to id/name.
type NeighborhoodRow struct {
	ID   int64  `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}
