package sparql

import "strings"

// indentUnit is one level of indentation in rendered query text.
const indentUnit = "   "

// Modifier tags how a nested graph pattern combines with its siblings.
type Modifier string

const (
	// ModifierNone nests the child block with no preceding keyword.
	ModifierNone Modifier = "NONE"

	// ModifierOptional prefixes the child's opening brace with OPTIONAL.
	ModifierOptional Modifier = "OPTIONAL"

	// ModifierUnion emits a standalone UNION line before the child block.
	// The renderer assumes a preceding sibling block exists; it does not
	// verify this.
	ModifierUnion Modifier = "UNION"

	// ModifierMinus prefixes the child's opening brace with MINUS.
	ModifierMinus Modifier = "MINUS"
)

// nestedPattern is one (modifier, child) entry in a pattern's nesting list.
type nestedPattern struct {
	modifier Modifier
	child    *GraphPattern
}

// GraphPattern is a brace-delimited SPARQL block: ordered triples, nested
// tagged child patterns, nested sub-select queries, bindings and filters.
//
// A parent exclusively owns its nested children, forming a tree. Attaching
// a pattern that would close a cycle is rejected with CycleError. Sibling
// order within each category follows insertion order; the categories
// themselves always render in the canonical order
// triples, nested patterns, sub-selects, bindings, filters.
//
// The zero value is not ready for use; create patterns with NewGraphPattern.
// A GraphPattern is not safe for concurrent use.
type GraphPattern struct {
	triples  []Triple
	nested   []nestedPattern
	selects  []*SelectQuery
	bindings []Binding
	filters  []Filter
}

// NewGraphPattern creates an empty graph pattern.
func NewGraphPattern() *GraphPattern {
	return &GraphPattern{}
}

// AddTriples appends triples, preserving call order.
func (p *GraphPattern) AddTriples(triples ...Triple) {
	p.triples = append(p.triples, triples...)
}

// AddFilter appends a FILTER expression.
func (p *GraphPattern) AddFilter(filter Filter) {
	p.filters = append(p.filters, filter)
}

// AddBinding appends a BIND expression.
func (p *GraphPattern) AddBinding(binding Binding) {
	p.bindings = append(p.bindings, binding)
}

// AddNestedPattern appends child as a nested block tagged with modifier.
//
// The append is rejected atomically with CycleError if child is p itself,
// or if p is already reachable from child through existing nesting links
// (the attachment would create a cycle). No other validation is performed:
// a UNION child with no preceding sibling is accepted and renders a
// dangling UNION keyword, which is the caller's responsibility.
func (p *GraphPattern) AddNestedPattern(child *GraphPattern, modifier Modifier) error {
	if child == p {
		return &CycleError{Message: "pattern cannot be nested inside itself"}
	}
	if child.reaches(p) {
		return &CycleError{Message: "pattern is an ancestor of the proposed child"}
	}
	p.nested = append(p.nested, nestedPattern{modifier: modifier, child: child})
	return nil
}

// AddNestedSelect appends a SELECT sub-query rendered as a brace-wrapped
// block inside the pattern. The sub-query's WHERE pattern participates in
// the cycle invariant exactly like a nested pattern.
func (p *GraphPattern) AddNestedSelect(query *SelectQuery) error {
	if query.where != nil {
		if query.where == p {
			return &CycleError{Message: "sub-select WHERE pattern is the enclosing pattern"}
		}
		if query.where.reaches(p) {
			return &CycleError{Message: "pattern is an ancestor of the sub-select WHERE pattern"}
		}
	}
	p.selects = append(p.selects, query)
	return nil
}

// reaches reports whether target can be reached from p through nesting
// links, including through sub-select WHERE patterns.
func (p *GraphPattern) reaches(target *GraphPattern) bool {
	for _, n := range p.nested {
		if n.child == target || n.child.reaches(target) {
			return true
		}
	}
	for _, q := range p.selects {
		if q.where == nil {
			continue
		}
		if q.where == target || q.where.reaches(target) {
			return true
		}
	}
	return false
}

// Render produces the pattern block text at the given indentation depth.
//
// Render is pure: it never mutates the pattern, and repeated calls on an
// unmutated pattern return identical text. The block opens with { at the
// current depth, indents every inner line by one more unit, and closes
// with } at the current depth with no trailing newline.
func (p *GraphPattern) Render(depth int) string {
	var b strings.Builder
	p.appendBlock(&b, depth, "")
	return strings.TrimSuffix(b.String(), "\n")
}

// appendBlock writes the pattern block, preceded by keyword on the opening
// brace line (e.g. "OPTIONAL ", "WHERE ", or empty). The block always ends
// with a newline; top-level callers trim it.
func (p *GraphPattern) appendBlock(b *strings.Builder, depth int, keyword string) {
	outer := strings.Repeat(indentUnit, depth)
	inner := outer + indentUnit

	b.WriteString(outer)
	b.WriteString(keyword)
	b.WriteString("{\n")

	for _, t := range p.triples {
		b.WriteString(inner)
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	for _, n := range p.nested {
		switch n.modifier {
		case ModifierOptional:
			n.child.appendBlock(b, depth+1, "OPTIONAL ")
		case ModifierMinus:
			n.child.appendBlock(b, depth+1, "MINUS ")
		case ModifierUnion:
			b.WriteString(inner)
			b.WriteString("UNION\n")
			n.child.appendBlock(b, depth+1, "")
		default:
			n.child.appendBlock(b, depth+1, "")
		}
	}

	for _, q := range p.selects {
		b.WriteString(inner)
		b.WriteString("{\n")
		b.WriteString(q.render(depth + 2))
		b.WriteString("\n")
		b.WriteString(inner)
		b.WriteString("}\n")
	}

	for _, bind := range p.bindings {
		b.WriteString(inner)
		b.WriteString(bind.Render())
		b.WriteString("\n")
	}

	for _, f := range p.filters {
		b.WriteString(inner)
		b.WriteString(f.Render())
		b.WriteString("\n")
	}

	b.WriteString(outer)
	b.WriteString("}\n")
}
