package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/vijayskumar/SPARQL-Burger/sparql"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Document file not found
	ErrCodeParseFailed = "E003" // YAML/CUE parse failed
	ErrCodeUnsupported = "E004" // Unsupported document extension
	ErrCodeInvalidDoc  = "E005" // Document structure invalid
	ErrCodeCycle       = "E006" // Pattern nesting would create a cycle
	ErrCodeWriteFailed = "E007" // File write error
)

// LoadError represents an error that occurred during document loading
// or query building.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// QueryDoc is a declarative query document, decoded from YAML or CUE.
//
// The same struct serves both query types: select documents use the
// projection and solution-modifier fields, update documents use the
// delete/insert fields. Both share prefixes and where.
type QueryDoc struct {
	Type            string      `json:"type" yaml:"type"` // "select" | "update"
	Prefixes        []PrefixDoc `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	PopularPrefixes bool        `json:"popular_prefixes,omitempty" yaml:"popular_prefixes,omitempty"`

	Distinct  bool       `json:"distinct,omitempty" yaml:"distinct,omitempty"`
	Reduced   bool       `json:"reduced,omitempty" yaml:"reduced,omitempty"`
	Variables []string   `json:"variables,omitempty" yaml:"variables,omitempty"`
	GroupBy   [][]string `json:"group_by,omitempty" yaml:"group_by,omitempty"`
	Having    []string   `json:"having,omitempty" yaml:"having,omitempty"`
	OrderBy   [][]string `json:"order_by,omitempty" yaml:"order_by,omitempty"`
	Limit     *int       `json:"limit,omitempty" yaml:"limit,omitempty"`
	Offset    *int       `json:"offset,omitempty" yaml:"offset,omitempty"`

	Where  *PatternDoc `json:"where,omitempty" yaml:"where,omitempty"`
	Delete *PatternDoc `json:"delete,omitempty" yaml:"delete,omitempty"`
	Insert *PatternDoc `json:"insert,omitempty" yaml:"insert,omitempty"`
}

// PrefixDoc declares one namespace prefix.
type PrefixDoc struct {
	Label     string `json:"label" yaml:"label"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// PatternDoc describes one graph pattern. Triples are 3-element
// [subject, predicate, object] lists.
type PatternDoc struct {
	Triples [][]string   `json:"triples,omitempty" yaml:"triples,omitempty"`
	Nested  []NestedDoc  `json:"nested,omitempty" yaml:"nested,omitempty"`
	Bind    []BindingDoc `json:"bind,omitempty" yaml:"bind,omitempty"`
	Filters []string     `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// NestedDoc attaches a child pattern with a modifier
// (NONE, OPTIONAL, UNION or MINUS; empty means NONE).
type NestedDoc struct {
	Modifier string      `json:"modifier,omitempty" yaml:"modifier,omitempty"`
	Pattern  *PatternDoc `json:"pattern" yaml:"pattern"`
}

// BindingDoc binds an expression value to a variable. Value is either a
// plain scalar (emitted as an opaque literal) or a nested expression map:
//
//	value: {bound: "?age"}
//	value: {if: {condition: {bound: "?age"}, then: "?age", else: "32"}}
type BindingDoc struct {
	Variable string `json:"variable" yaml:"variable"`
	Value    any    `json:"value" yaml:"value"`
}

// LoadDocument reads and decodes a query document. The format is chosen
// by extension: .yaml/.yml or .cue.
func LoadDocument(path string) (*QueryDoc, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("query document not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading query document: %v", err)}
	}

	var doc QueryDoc
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML document: %v", err)}
		}
	case ".cue":
		ctx := cuecontext.New()
		value := ctx.CompileBytes(data, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("compiling CUE document: %v", err)}
		}
		if err := value.Decode(&doc); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("decoding CUE document: %v", err)}
		}
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported document extension %q (want .yaml, .yml or .cue)", filepath.Ext(path))}
	}

	return &doc, nil
}

// BuildQuery builds the query described by doc and returns its rendered
// text. Every document string is NFC-normalized on the way in; the core
// builder itself never touches caller strings.
func BuildQuery(doc *QueryDoc) (string, error) {
	switch doc.Type {
	case "select":
		return buildSelect(doc)
	case "update":
		return buildUpdate(doc)
	default:
		return "", &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("unknown query type %q (want select or update)", doc.Type)}
	}
}

func buildSelect(doc *QueryDoc) (string, error) {
	q := sparql.NewSelectQuery()
	if doc.PopularPrefixes {
		q.AddPopularPrefixes()
	}
	for _, p := range doc.Prefixes {
		q.AddPrefix(sparql.Prefix{Label: nfc(p.Label), Namespace: nfc(p.Namespace)})
	}
	q.SetDistinct(doc.Distinct)
	q.SetReduced(doc.Reduced)
	for _, v := range doc.Variables {
		q.AddVariables(nfc(v))
	}
	if doc.Where != nil {
		where, err := buildPattern(doc.Where)
		if err != nil {
			return "", err
		}
		q.SetWherePattern(where)
	}
	for _, g := range doc.GroupBy {
		q.AddGroupBy(sparql.GroupBy{Variables: nfcAll(g)})
	}
	for _, h := range doc.Having {
		q.AddHaving(sparql.Having{Expression: nfc(h)})
	}
	for _, o := range doc.OrderBy {
		q.AddOrderBy(sparql.OrderBy{Expressions: nfcAll(o)})
	}
	if doc.Limit != nil {
		q.SetLimit(*doc.Limit)
	}
	if doc.Offset != nil {
		q.SetOffset(*doc.Offset)
	}
	return q.Render(), nil
}

func buildUpdate(doc *QueryDoc) (string, error) {
	q := sparql.NewUpdateQuery()
	if doc.PopularPrefixes {
		q.AddPopularPrefixes()
	}
	for _, p := range doc.Prefixes {
		q.AddPrefix(sparql.Prefix{Label: nfc(p.Label), Namespace: nfc(p.Namespace)})
	}
	if doc.Delete != nil {
		pattern, err := buildPattern(doc.Delete)
		if err != nil {
			return "", err
		}
		q.SetDeletePattern(pattern)
	}
	if doc.Insert != nil {
		pattern, err := buildPattern(doc.Insert)
		if err != nil {
			return "", err
		}
		q.SetInsertPattern(pattern)
	}
	if doc.Where != nil {
		pattern, err := buildPattern(doc.Where)
		if err != nil {
			return "", err
		}
		q.SetWherePattern(pattern)
	}
	return q.Render(), nil
}

func buildPattern(doc *PatternDoc) (*sparql.GraphPattern, error) {
	p := sparql.NewGraphPattern()

	for i, triple := range doc.Triples {
		if len(triple) != 3 {
			return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("triple %d: want [subject, predicate, object], got %d element(s)", i, len(triple))}
		}
		p.AddTriples(sparql.Triple{
			Subject:   nfc(triple[0]),
			Predicate: nfc(triple[1]),
			Object:    nfc(triple[2]),
		})
	}

	for i, nested := range doc.Nested {
		if nested.Pattern == nil {
			return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("nested pattern %d: missing pattern", i)}
		}
		modifier, err := parseModifier(nested.Modifier)
		if err != nil {
			return nil, err
		}
		child, err := buildPattern(nested.Pattern)
		if err != nil {
			return nil, err
		}
		// Documents describe a tree, so attachment cannot cycle; surface
		// the error anyway rather than masking a builder bug.
		if err := p.AddNestedPattern(child, modifier); err != nil {
			return nil, &LoadError{Code: ErrCodeCycle, Message: err.Error()}
		}
	}

	for _, binding := range doc.Bind {
		value, err := buildExpression(binding.Value)
		if err != nil {
			return nil, err
		}
		p.AddBinding(sparql.Binding{Variable: nfc(binding.Variable), Value: value})
	}

	for _, filter := range doc.Filters {
		p.AddFilter(sparql.Filter{Expression: nfc(filter)})
	}

	return p, nil
}

func parseModifier(s string) (sparql.Modifier, error) {
	switch s {
	case "", "NONE":
		return sparql.ModifierNone, nil
	case "OPTIONAL":
		return sparql.ModifierOptional, nil
	case "UNION":
		return sparql.ModifierUnion, nil
	case "MINUS":
		return sparql.ModifierMinus, nil
	default:
		return sparql.ModifierNone, &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("unknown modifier %q (want NONE, OPTIONAL, UNION or MINUS)", s)}
	}
}

// buildExpression converts a decoded document value into an expression.
// Scalars become opaque literals; maps select the expression variant.
func buildExpression(v any) (sparql.Expression, error) {
	switch val := v.(type) {
	case nil:
		return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: "binding has no value"}
	case string:
		return sparql.Literal(nfc(val)), nil
	case map[string]any:
		if bound, ok := val["bound"]; ok {
			variable, ok := bound.(string)
			if !ok {
				return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("bound: want variable string, got %T", bound)}
			}
			return sparql.Bound{Variable: nfc(variable)}, nil
		}
		if ifVal, ok := val["if"]; ok {
			return buildIfClause(ifVal)
		}
		return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: "expression map must have a bound or if key"}
	default:
		// YAML scalars such as numbers and booleans are emitted verbatim.
		return sparql.Literal(nfc(fmt.Sprintf("%v", val))), nil
	}
}

func buildIfClause(v any) (sparql.Expression, error) {
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, &LoadError{Code: ErrCodeInvalidDoc, Message: fmt.Sprintf("if: want map with condition/then/else, got %T", v)}
	}

	condition, err := buildExpression(fields["condition"])
	if err != nil {
		return nil, err
	}
	trueValue, err := buildExpression(fields["then"])
	if err != nil {
		return nil, err
	}
	falseValue, err := buildExpression(fields["else"])
	if err != nil {
		return nil, err
	}

	return sparql.IfClause{
		Condition:  condition,
		TrueValue:  trueValue,
		FalseValue: falseValue,
	}, nil
}

// nfc normalizes a document string to Unicode NFC form.
func nfc(s string) string {
	return norm.NFC.String(s)
}

func nfcAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = nfc(s)
	}
	return out
}
