package jobquery

import "strings"

// Expr is a column-valued SQL expression. Exprs never carry bind arguments.
type Expr interface {
	sql() string
}

type column string

func (c column) sql() string { return string(c) }

type coalesce []Expr

func (c coalesce) sql() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.sql()
	}
	return "COALESCE(" + strings.Join(parts, ", ") + ")"
}

// Col references a qualified column such as "job_postings.title".
func Col(name string) Expr { return column(name) }

// Coalesce yields the first non-NULL of exprs.
func Coalesce(exprs ...Expr) Expr { return coalesce(exprs) }

// Predicate is a boolean SQL condition. The set of implementations is closed.
type Predicate interface {
	render(r *renderer)
}

type cmp struct {
	left  Expr
	op    string
	value interface{}
}

func (p cmp) render(r *renderer) {
	r.write(p.left.sql())
	r.write(" " + p.op + " ")
	r.bind(p.value)
}

type containsFold struct {
	expr Expr
	term string
}

func (p containsFold) render(r *renderer) {
	r.write("LOWER(" + p.expr.sql() + ") LIKE ")
	r.bind("%" + escapeLike(strings.ToLower(p.term)) + "%")
	r.write(` ESCAPE '\'`)
}

type junction struct {
	op    string
	terms []Predicate
}

func (p junction) render(r *renderer) {
	if len(p.terms) == 1 {
		p.terms[0].render(r)
		return
	}
	r.write("(")
	for i, t := range p.terms {
		if i > 0 {
			r.write(" " + p.op + " ")
		}
		t.render(r)
	}
	r.write(")")
}

type raw struct {
	sql  string
	args []interface{}
}

func (p raw) render(r *renderer) {
	r.write("(" + p.sql + ")")
	r.args = append(r.args, p.args...)
}

func Eq(left Expr, value interface{}) Predicate  { return cmp{left: left, op: "=", value: value} }
func Gte(left Expr, value interface{}) Predicate { return cmp{left: left, op: ">=", value: value} }
func Lte(left Expr, value interface{}) Predicate { return cmp{left: left, op: "<=", value: value} }

// ContainsFold matches rows whose expr contains term, ignoring case.
// LIKE wildcards inside term are matched literally.
func ContainsFold(expr Expr, term string) Predicate {
	return containsFold{expr: expr, term: term}
}

// And joins terms with AND. nil terms are dropped.
func And(terms ...Predicate) Predicate { return newJunction("AND", terms) }

// Or joins terms with OR. nil terms are dropped.
func Or(terms ...Predicate) Predicate { return newJunction("OR", terms) }

// Raw wraps a hand-written condition using ? placeholders.
func Raw(sql string, args ...interface{}) Predicate {
	return raw{sql: sql, args: args}
}

func newJunction(op string, terms []Predicate) Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if t != nil {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return junction{op: op, terms: kept}
}

type renderer struct {
	sb   strings.Builder
	args []interface{}
}

func (r *renderer) write(s string) { r.sb.WriteString(s) }

func (r *renderer) bind(v interface{}) {
	r.sb.WriteString("?")
	r.args = append(r.args, v)
}

// Render turns p into a SQL condition with ? placeholders and its arguments
// in placeholder order. A nil predicate renders to an empty string.
func Render(p Predicate) (string, []interface{}) {
	if p == nil {
		return "", nil
	}
	r := &renderer{}
	p.render(r)
	return r.sb.String(), r.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsFoldGo is the in-memory twin of ContainsFold. SQLite's LOWER only
// folds ASCII, so the two agree on ASCII input only.
func containsFoldGo(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
