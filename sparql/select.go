package sparql

import (
	"strconv"
	"strings"
)

// SelectQuery assembles a SPARQL SELECT query from prefixes, a projection,
// one WHERE graph pattern and solution modifiers.
//
// Render emits clauses in a fixed order, omitting any clause whose value
// was never set: PREFIX block (with one blank line after it when present),
// SELECT line, WHERE block, GROUP BY, HAVING, ORDER BY, LIMIT, OFFSET.
// An unset WHERE pattern is not an error; the WHERE block is simply absent.
type SelectQuery struct {
	prefixes  []Prefix
	variables []string
	distinct  bool
	reduced   bool
	where     *GraphPattern
	groupBy   []GroupBy
	having    []Having
	orderBy   []OrderBy
	limit     *int
	offset    *int
}

// NewSelectQuery creates an empty SELECT query.
func NewSelectQuery() *SelectQuery {
	return &SelectQuery{}
}

// AddPrefix appends a PREFIX declaration.
func (q *SelectQuery) AddPrefix(prefix Prefix) {
	q.prefixes = append(q.prefixes, prefix)
}

// AddPopularPrefixes appends the builtin rdf, rdfs, xml, owl, prov and
// foaf prefix declarations, in that order.
func (q *SelectQuery) AddPopularPrefixes() {
	q.prefixes = append(q.prefixes, popularPrefixes...)
}

// AddVariables appends projected variables, preserving call order.
// If no variables are ever added, the projection renders as *.
func (q *SelectQuery) AddVariables(variables ...string) {
	q.variables = append(q.variables, variables...)
}

// SetDistinct marks the projection as SELECT DISTINCT.
// DISTINCT takes precedence over REDUCED when both are set.
func (q *SelectQuery) SetDistinct(distinct bool) {
	q.distinct = distinct
}

// SetReduced marks the projection as SELECT REDUCED.
func (q *SelectQuery) SetReduced(reduced bool) {
	q.reduced = reduced
}

// SetWherePattern sets the graph pattern rendered after WHERE.
func (q *SelectQuery) SetWherePattern(pattern *GraphPattern) {
	q.where = pattern
}

// AddGroupBy appends a GROUP BY clause.
func (q *SelectQuery) AddGroupBy(group GroupBy) {
	q.groupBy = append(q.groupBy, group)
}

// AddHaving appends a HAVING clause.
func (q *SelectQuery) AddHaving(having Having) {
	q.having = append(q.having, having)
}

// AddOrderBy appends an ORDER BY clause.
func (q *SelectQuery) AddOrderBy(order OrderBy) {
	q.orderBy = append(q.orderBy, order)
}

// SetLimit sets the LIMIT value.
func (q *SelectQuery) SetLimit(limit int) {
	q.limit = &limit
}

// SetOffset sets the OFFSET value.
func (q *SelectQuery) SetOffset(offset int) {
	q.offset = &offset
}

// Render produces the complete SELECT query text.
// Render is pure and idempotent; it never mutates the query.
func (q *SelectQuery) Render() string {
	return q.render(0)
}

// render produces the query text with every clause line indented by depth
// units. Depth is non-zero only when the query is embedded as a sub-select
// inside a graph pattern.
func (q *SelectQuery) render(depth int) string {
	outer := strings.Repeat(indentUnit, depth)
	var b strings.Builder

	for _, p := range q.prefixes {
		b.WriteString(p.Render())
		b.WriteString("\n")
	}
	if len(q.prefixes) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(outer)
	b.WriteString("SELECT ")
	if q.distinct {
		b.WriteString("DISTINCT ")
	} else if q.reduced {
		b.WriteString("REDUCED ")
	}
	if len(q.variables) > 0 {
		b.WriteString(strings.Join(q.variables, " "))
	} else {
		b.WriteString("*")
	}
	b.WriteString("\n")

	if q.where != nil {
		q.where.appendBlock(&b, depth, "WHERE ")
	}

	for _, g := range q.groupBy {
		b.WriteString(outer)
		b.WriteString(g.Render())
		b.WriteString("\n")
	}
	for _, h := range q.having {
		b.WriteString(outer)
		b.WriteString(h.Render())
		b.WriteString("\n")
	}
	for _, o := range q.orderBy {
		b.WriteString(outer)
		b.WriteString(o.Render())
		b.WriteString("\n")
	}
	if q.limit != nil {
		b.WriteString(outer)
		b.WriteString("LIMIT ")
		b.WriteString(strconv.Itoa(*q.limit))
		b.WriteString("\n")
	}
	if q.offset != nil {
		b.WriteString(outer)
		b.WriteString("OFFSET ")
		b.WriteString(strconv.Itoa(*q.offset))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
