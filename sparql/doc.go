// Package sparql builds well-formed SPARQL 1.1 query text from a tree of
// composable objects, sparing callers manual string concatenation.
//
// This package contains the complete builder surface. The CLI layer imports
// sparql; sparql imports nothing internal. This keeps the builder a pure,
// dependency-light foundation.
//
// Key design constraints:
//   - All caller-supplied strings (terms, expressions, namespaces) are
//     opaque: never escaped, validated, or normalized
//   - Rendering is a pure function of builder state - no mutation, no I/O
//   - The only error the builder raises is CycleError, at the attachment
//     call that would turn the pattern tree into a cycle
//   - Clause emission order inside a graph pattern is canonical
//     (triples, nested patterns, sub-selects, bindings, filters)
//     regardless of the order the add operations were called in
package sparql
