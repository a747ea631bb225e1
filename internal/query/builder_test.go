package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderNoFragments(t *testing.T) {
	var b Builder
	where, args := b.Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuilderInBindsPositionally(t *testing.T) {
	var b Builder
	b.In("code", []int64{110, 700, 861})

	where, args := b.Where()
	assert.Equal(t, " WHERE code IN (?, ?, ?)", where)
	assert.Equal(t, []any{int64(110), int64(700), int64(861)}, args)
}

func TestBuilderEmptyInContributesNothing(t *testing.T) {
	var b Builder
	b.In("code", nil)
	b.DateGE("date_time", "")
	b.DateLE("date_time", "")

	where, args := b.Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuilderCombinesWithAnd(t *testing.T) {
	var b Builder
	b.DateGE("date_time", "2023-01-01")
	b.In("police_grid", []int64{87})

	where, args := b.Where()
	assert.Equal(t, " WHERE date(date_time) >= date(?) AND police_grid IN (?)", where)
	assert.Equal(t, []any{"2023-01-01", int64(87)}, args)
}

func TestCodesQuery(t *testing.T) {
	sql, args := Codes(nil)
	assert.Equal(t, "SELECT code, incident_type AS type FROM Codes ORDER BY code", sql)
	assert.Nil(t, args)

	sql, args = Codes([]int64{110})
	assert.Equal(t, "SELECT code, incident_type AS type FROM Codes WHERE code IN (?) ORDER BY code", sql)
	assert.Equal(t, []any{int64(110)}, args)
}

func TestNeighborhoodsQuery(t *testing.T) {
	sql, args := Neighborhoods([]int64{3, 5})
	assert.Equal(t,
		"SELECT neighborhood_number AS id, neighborhood_name AS name FROM Neighborhoods WHERE neighborhood_number IN (?, ?) ORDER BY id",
		sql)
	assert.Equal(t, []any{int64(3), int64(5)}, args)
}

func TestIncidentsQueryNoFilters(t *testing.T) {
	sql, args := Incidents(IncidentFilter{Limit: DefaultLimit})
	assert.Equal(t,
		"SELECT case_number, date_time, code, incident, police_grid, neighborhood_number, block FROM Incidents ORDER BY date_time DESC LIMIT ?",
		sql)
	assert.Equal(t, []any{int64(DefaultLimit)}, args)
}

func TestIncidentsQueryAllFilters(t *testing.T) {
	sql, args := Incidents(IncidentFilter{
		StartDate:     "2023-01-01",
		EndDate:       "2023-01-31",
		Codes:         []int64{600},
		Grids:         []int64{87, 88},
		Neighborhoods: []int64{5},
		Limit:         25,
	})

	assert.Equal(t,
		"SELECT case_number, date_time, code, incident, police_grid, neighborhood_number, block FROM Incidents"+
			" WHERE date(date_time) >= date(?) AND date(date_time) <= date(?)"+
			" AND code IN (?) AND police_grid IN (?, ?) AND neighborhood_number IN (?)"+
			" ORDER BY date_time DESC LIMIT ?",
		sql)

	// Values bind in clause order and the limit is always last.
	assert.Equal(t, []any{
		"2023-01-01", "2023-01-31",
		int64(600), int64(87), int64(88), int64(5),
		int64(25),
	}, args)
}
