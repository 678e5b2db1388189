package jobquery

import "strings"

// Sort names a result ordering.
type Sort string

const (
	SortLatest     Sort = "latest"
	SortSalaryHigh Sort = "salary-high"
	SortSalaryLow  Sort = "salary-low"
	SortRelevance  Sort = "relevance"
)

func (s Sort) Valid() bool {
	switch s {
	case SortLatest, SortSalaryHigh, SortSalaryLow, SortRelevance:
		return true
	}
	return false
}

// OrderTerm is one ORDER BY key.
type OrderTerm struct {
	Expr      Expr
	Desc      bool
	NullsLast bool
}

// Terms returns the ORDER BY keys for s. The list always ends with the
// primary key so that equal rows keep a fixed position across pages.
// An empty Sort orders like SortLatest.
func (s Sort) Terms() []OrderTerm {
	newest := OrderTerm{Expr: ColCreatedAt, Desc: true}
	var terms []OrderTerm
	switch s {
	case SortSalaryHigh:
		terms = []OrderTerm{{Expr: ColSalaryMax, Desc: true, NullsLast: true}, newest}
	case SortSalaryLow:
		terms = []OrderTerm{{Expr: ColSalaryMin, NullsLast: true}, newest}
	case SortRelevance:
		terms = []OrderTerm{{Expr: ColViewCount, Desc: true}, newest}
	default:
		terms = []OrderTerm{newest}
	}
	return append(terms, OrderTerm{Expr: ColID})
}

// RenderOrder formats terms as the body of an ORDER BY clause.
func RenderOrder(terms []OrderTerm) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		dir := " ASC"
		if t.Desc {
			dir = " DESC"
		}
		part := t.Expr.sql() + dir
		if t.NullsLast {
			part += " NULLS LAST"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}
