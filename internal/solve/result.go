// Package solve implements the pluggable type-solver chain (C4): an ordered
// list of solvers, each attempting to translate one source.TypeInfo into a
// TIDL type expression, emitting cross-module import requirements and
// generic constraints as side effects.
package solve

import "github.com/sunholo/typebind/internal/tidlast"

// GenericConstraints maps a generic-parameter identifier to the set of
// `extends`-style TIDL types discovered for it during solving.
type GenericConstraints map[string][]tidlast.TSType

// Add records that name must extend t.
func (c GenericConstraints) Add(name string, t tidlast.TSType) GenericConstraints {
	if c == nil {
		c = GenericConstraints{}
	}
	c[name] = append(c[name], t)
	return c
}

// Merge folds other into c, returning the (possibly new) merged map.
func (c GenericConstraints) Merge(other GenericConstraints) GenericConstraints {
	if len(other) == 0 {
		return c
	}
	if c == nil {
		c = GenericConstraints{}
	}
	for k, v := range other {
		c[k] = append(c[k], v...)
	}
	return c
}

// ImportEntry signals that a produced type references an identifier defined
// in another module.
type ImportEntry struct {
	SourcePath string
	Ident      string
}

// Solved is every solver result's payload: the translated value plus the
// side effects discovered while producing it.
type Solved[T any] struct {
	Inner       T
	Imports     []ImportEntry
	Constraints GenericConstraints
}

// mergeSideEffects combines the imports/constraints of two Solved results,
// keeping inner from whichever caller supplies it separately.
func mergeSideEffects[A, B any](a Solved[A], b Solved[B]) ([]ImportEntry, GenericConstraints) {
	imports := append(append([]ImportEntry{}, a.Imports...), b.Imports...)
	constraints := a.Constraints.Merge(b.Constraints)
	return imports, constraints
}

// ResultKind discriminates Result.
type ResultKind int

const (
	Continue ResultKind = iota
	SolvedKind
	ErrorKind
)

// Result is SolverResult<T>: Continue | Solved(Solved<T>) | Error(E).
type Result[T any] struct {
	Kind  ResultKind
	Value Solved[T]
	Err   error
}

// ContinueResult builds a Continue result.
func ContinueResult[T any]() Result[T] { return Result[T]{Kind: Continue} }

// SolvedResult builds a Solved result.
func SolvedResult[T any](v Solved[T]) Result[T] { return Result[T]{Kind: SolvedKind, Value: v} }

// ErrorResult builds an Error result.
func ErrorResult[T any](err error) Result[T] { return Result[T]{Kind: ErrorKind, Err: err} }

// Ok is a convenience constructor for a Solved result with no side effects.
func Ok[T any](inner T) Result[T] {
	return SolvedResult(Solved[T]{Inner: inner})
}
