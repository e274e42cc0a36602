// Package compileerr defines the error kinds the Analyzer and
// Optimizer raise, one exported struct per kind, following the
// teacher's own struct-per-error-kind idiom in its resource/domain
// errors.
package compileerr

import "fmt"

// TableNotFound is raised by ResolveRelations when a Catalog lookup
// fails.
type TableNotFound struct {
	Name string
}

func NewTableNotFound(name string) *TableNotFound {
	return &TableNotFound{Name: name}
}

func (e *TableNotFound) Error() string {
	return fmt.Sprintf("table not found: %s", e.Name)
}

// ResolutionFailure is raised when the Analyzer's resolution batch
// converges (or hits its iteration cap) while an UnresolvedAttribute,
// UnresolvedRelation, or Star still remains in the plan.
type ResolutionFailure struct {
	Detail string
}

func NewResolutionFailure(detail string) *ResolutionFailure {
	return &ResolutionFailure{Detail: detail}
}

func (e *ResolutionFailure) Error() string {
	return fmt.Sprintf("resolution failure: %s", e.Detail)
}

// TypeCheckFailure is raised when a fully-resolved expression still
// has no valid type, e.g. operands with no common promotable type.
type TypeCheckFailure struct {
	Detail string
}

func NewTypeCheckFailure(detail string) *TypeCheckFailure {
	return &TypeCheckFailure{Detail: detail}
}

func (e *TypeCheckFailure) Error() string {
	return fmt.Sprintf("type check failure: %s", e.Detail)
}

// Unsupported is raised by any component (frontend adapter,
// ResolveSelfJoinsRule) asked to handle a construct it deliberately
// does not translate.
type Unsupported struct {
	Feature string
}

func NewUnsupported(feature string) *Unsupported {
	return &Unsupported{Feature: feature}
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s", e.Feature)
}

// InternalError marks a condition that should be impossible given the
// component's own invariants, e.g. a rule batch failing to converge
// within its safety ceiling.
type InternalError struct {
	Detail string
}

func NewInternalError(detail string) *InternalError {
	return &InternalError{Detail: detail}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Detail)
}
