package sparql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripleRender(t *testing.T) {
	tr := Triple{Subject: "?person", Predicate: "rdf:type", Object: "ex:Person"}
	// Terminator is the literal space-dot-space sequence.
	assert.Equal(t, "?person rdf:type ex:Person . ", tr.Render())
}

func TestTripleRender_OpaqueTerms(t *testing.T) {
	// Terms pass through verbatim - no escaping, no validation.
	tr := Triple{Subject: "<http://a/b>", Predicate: "ex:says", Object: `"hi <there>"@en`}
	assert.Equal(t, `<http://a/b> ex:says "hi <there>"@en . `, tr.Render())
}

func TestFilterRender(t *testing.T) {
	f := Filter{Expression: "?age > 30"}
	assert.Equal(t, "FILTER (?age > 30)", f.Render())
}

func TestPrefixRender(t *testing.T) {
	p := Prefix{Label: "ex", Namespace: "http://www.example.com#"}
	assert.Equal(t, "PREFIX ex: <http://www.example.com#>", p.Render())
}

func TestGroupByRender(t *testing.T) {
	g := GroupBy{Variables: []string{"?person", "?age"}}
	assert.Equal(t, "GROUP BY ?person ?age", g.Render())
}

func TestOrderByRender(t *testing.T) {
	o := OrderBy{Expressions: []string{"DESC(?age)", "?person"}}
	assert.Equal(t, "ORDER BY DESC(?age) ?person", o.Render())
}

func TestHavingRender(t *testing.T) {
	h := Having{Expression: "COUNT(?person) > 5"}
	assert.Equal(t, "HAVING (COUNT(?person) > 5)", h.Render())
}

func TestNewBlankNode(t *testing.T) {
	a := NewBlankNode()
	b := NewBlankNode()

	assert.True(t, strings.HasPrefix(a, "_:b"))
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}
