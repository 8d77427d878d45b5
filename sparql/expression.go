package sparql

// Expression is a sealed interface representing a value usable inside a
// BIND or as an IF argument. Only Literal, Bound and IfClause implement it.
//
// The marker method pattern prevents external implementations and enables
// exhaustive type handling: an expression tree is built bottom-up from
// immutable leaves, so it is acyclic by construction and rendering always
// terminates.
type Expression interface {
	// Render produces the SPARQL fragment for this expression, rendering
	// any nested expression fields recursively.
	Render() string

	expressionNode() // Marker method - seals interface to this package
}

// Literal is an opaque, pre-formatted expression string. It is emitted
// verbatim: no quoting, escaping or validation is applied.
type Literal string

func (Literal) expressionNode() {}

// Render returns the literal text unchanged.
func (l Literal) Render() string {
	return string(l)
}

// Bound is the SPARQL BOUND built-in: tests whether a variable is bound.
type Bound struct {
	Variable string
}

func (Bound) expressionNode() {}

// Render produces the BOUND fragment.
func (b Bound) Render() string {
	return "BOUND (" + b.Variable + ")"
}

// IfClause is the SPARQL IF built-in. Each field may be a Literal or a
// further nested expression, with no depth limit.
type IfClause struct {
	Condition  Expression
	TrueValue  Expression
	FalseValue Expression
}

func (IfClause) expressionNode() {}

// Render produces the IF fragment, rendering each argument recursively.
func (c IfClause) Render() string {
	return "IF (" + renderExpression(c.Condition) + ", " +
		renderExpression(c.TrueValue) + ", " +
		renderExpression(c.FalseValue) + ")"
}

// Binding assigns an expression's value to a variable within a pattern.
type Binding struct {
	Variable string
	Value    Expression
}

// Render produces the BIND fragment.
func (b Binding) Render() string {
	return "BIND (" + renderExpression(b.Value) + " AS " + b.Variable + ")"
}

// renderExpression renders e, treating a nil expression as empty text so
// that a partially constructed tree still renders rather than panicking.
func renderExpression(e Expression) string {
	if e == nil {
		return ""
	}
	return e.Render()
}
