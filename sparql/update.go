package sparql

import "strings"

// UpdateQuery assembles a SPARQL DELETE/INSERT/WHERE update from prefixes
// and up to one graph pattern per clause.
//
// Render emits the PREFIX block, then each body clause that was set, in
// the fixed order DELETE, INSERT, WHERE. All three body clauses being
// unset yields a header-only, semantically empty update; that is accepted,
// not rejected.
type UpdateQuery struct {
	prefixes []Prefix
	delete   *GraphPattern
	insert   *GraphPattern
	where    *GraphPattern
}

// NewUpdateQuery creates an empty update query.
func NewUpdateQuery() *UpdateQuery {
	return &UpdateQuery{}
}

// AddPrefix appends a PREFIX declaration.
func (q *UpdateQuery) AddPrefix(prefix Prefix) {
	q.prefixes = append(q.prefixes, prefix)
}

// AddPopularPrefixes appends the builtin rdf, rdfs, xml, owl, prov and
// foaf prefix declarations, in that order.
func (q *UpdateQuery) AddPopularPrefixes() {
	q.prefixes = append(q.prefixes, popularPrefixes...)
}

// SetDeletePattern sets the graph pattern rendered after DELETE.
func (q *UpdateQuery) SetDeletePattern(pattern *GraphPattern) {
	q.delete = pattern
}

// SetInsertPattern sets the graph pattern rendered after INSERT.
func (q *UpdateQuery) SetInsertPattern(pattern *GraphPattern) {
	q.insert = pattern
}

// SetWherePattern sets the graph pattern rendered after WHERE.
func (q *UpdateQuery) SetWherePattern(pattern *GraphPattern) {
	q.where = pattern
}

// Render produces the complete update query text.
// Render is pure and idempotent; it never mutates the query.
func (q *UpdateQuery) Render() string {
	var b strings.Builder

	for _, p := range q.prefixes {
		b.WriteString(p.Render())
		b.WriteString("\n")
	}
	if len(q.prefixes) > 0 {
		b.WriteString("\n")
	}

	if q.delete != nil {
		q.delete.appendBlock(&b, 0, "DELETE ")
	}
	if q.insert != nil {
		q.insert.appendBlock(&b, 0, "INSERT ")
	}
	if q.where != nil {
		q.where.appendBlock(&b, 0, "WHERE ")
	}

	// TrimRight also drops the prefix block's separator line when no body
	// clause was set, so a header-only update leaves no blank-line artifact.
	return strings.TrimRight(b.String(), "\n")
}
