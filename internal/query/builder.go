package query

import "strings"

// Builder accumulates parameterized WHERE fragments combined with AND.
// Every user-supplied value is bound positionally; query text never
// contains interpolated input. A builder with no fragments contributes
// nothing, so any subset of filters assembles to valid SQL.
type Builder struct {
	conds []string
	args  []any
}

// In appends a membership predicate `field IN (?, ...)` bound to vals.
// An empty list contributes nothing.
func (b *Builder) In(field string, vals []int64) {
	if len(vals) == 0 {
		return
	}
	placeholders := strings.Repeat("?, ", len(vals)-1) + "?"
	b.conds = append(b.conds, field+" IN ("+placeholders+")")
	for _, v := range vals {
		b.args = append(b.args, v)
	}
}

// DateGE appends an inclusive lower date bound on col. Empty value
// contributes nothing.
func (b *Builder) DateGE(col, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, "date("+col+") >= date(?)")
	b.args = append(b.args, value)
}

// DateLE appends an inclusive upper date bound on col.
func (b *Builder) DateLE(col, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, "date("+col+") <= date(?)")
	b.args = append(b.args, value)
}

// Where returns the assembled " WHERE ..." clause and its bound values,
// or an empty string when no fragment was added.
func (b *Builder) Where() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// IncidentFilter is the normalized filter set for the incidents listing.
// Zero values mean "no restriction"; Limit is expected to be positive
// (callers normalize it via Limit()).
type IncidentFilter struct {
	StartDate     string
	EndDate       string
	Codes         []int64
	Grids         []int64
	Neighborhoods []int64
	Limit         int64
}

// Codes assembles the codes listing: code and incident_type aliased to
// type, optionally restricted to a code set, ascending by code.
func Codes(codes []int64) (string, []any) {
	var b Builder
	b.In("code", codes)
	where, args := b.Where()
	return "SELECT code, incident_type AS type FROM Codes" + where + " ORDER BY code", args
}

// Neighborhoods assembles the neighborhoods listing, aliasing
// neighborhood_number/neighborhood_name to id/name, ascending by id.
func Neighborhoods(ids []int64) (string, []any) {
	var b Builder
	b.In("neighborhood_number", ids)
	where, args := b.Where()
	return "SELECT neighborhood_number AS id, neighborhood_name AS name FROM Neighborhoods" + where + " ORDER BY id", args
}

// Incidents assembles the incidents listing. Clauses bind in the order
// they are appended and the row limit is always the final bound value.
func Incidents(f IncidentFilter) (string, []any) {
	var b Builder
	b.DateGE("date_time", f.StartDate)
	b.DateLE("date_time", f.EndDate)
	b.In("code", f.Codes)
	b.In("police_grid", f.Grids)
	b.In("neighborhood_number", f.Neighborhoods)
	where, args := b.Where()
	sql := "SELECT case_number, date_time, code, incident, police_grid, neighborhood_number, block FROM Incidents" +
		where + " ORDER BY date_time DESC LIMIT ?"
	return sql, append(args, f.Limit)
}
