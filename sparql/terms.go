package sparql

import "strings"

// Triple is a subject-predicate-object pattern. All three terms are
// caller-supplied, pre-formatted text and pass through verbatim.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Render produces the triple line fragment, terminated by the literal
// space-dot-space sequence required before the line break.
func (t Triple) Render() string {
	return t.Subject + " " + t.Predicate + " " + t.Object + " . "
}

// Filter restricts pattern matches to those satisfying a boolean expression.
// The expression is opaque text; the builder performs no validation.
type Filter struct {
	Expression string
}

// Render produces the FILTER fragment.
func (f Filter) Render() string {
	return "FILTER (" + f.Expression + ")"
}

// Prefix declares a namespace abbreviation for the query header.
type Prefix struct {
	Label     string
	Namespace string
}

// Render produces the PREFIX declaration line.
func (p Prefix) Render() string {
	return "PREFIX " + p.Label + ": <" + p.Namespace + ">"
}

// GroupBy holds the variables of one GROUP BY clause.
type GroupBy struct {
	Variables []string
}

// Render produces the GROUP BY fragment.
func (g GroupBy) Render() string {
	return "GROUP BY " + strings.Join(g.Variables, " ")
}

// OrderBy holds the expressions of one ORDER BY clause.
type OrderBy struct {
	Expressions []string
}

// Render produces the ORDER BY fragment.
func (o OrderBy) Render() string {
	return "ORDER BY " + strings.Join(o.Expressions, " ")
}

// Having holds the expression of one HAVING clause.
type Having struct {
	Expression string
}

// Render produces the HAVING fragment.
func (h Having) Render() string {
	return "HAVING (" + h.Expression + ")"
}

// popularPrefixes is the fixed set added by AddPopularPrefixes, in
// emission order.
var popularPrefixes = []Prefix{
	{Label: "rdf", Namespace: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Label: "rdfs", Namespace: "http://www.w3.org/2000/01/rdf-schema#"},
	{Label: "xml", Namespace: "http://www.w3.org/2001/XMLSchema#"},
	{Label: "owl", Namespace: "http://www.w3.org/2002/07/owl#"},
	{Label: "prov", Namespace: "http://www.w3.org/ns/prov#"},
	{Label: "foaf", Namespace: "http://xmlns.com/foaf/0.1/"},
}
