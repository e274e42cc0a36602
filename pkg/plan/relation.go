package plan

import (
	"fmt"
	"strings"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/types"
)

// UnresolvedRelation is a bare table-name reference as produced by a
// frontend, before the Analyzer's ResolveRelations rule has looked it
// up in the Catalog.
type UnresolvedRelation struct {
	Name string
}

func NewUnresolvedRelation(name string) *UnresolvedRelation {
	return &UnresolvedRelation{Name: name}
}

func (u *UnresolvedRelation) Children() []LogicalPlan             { return nil }
func (u *UnresolvedRelation) WithChildren(_ []LogicalPlan) LogicalPlan { return u }
func (u *UnresolvedRelation) Output() []*expr.AttributeRef        { return nil }
func (u *UnresolvedRelation) Resolved() bool                      { return false }
func (u *UnresolvedRelation) String() string                      { return fmt.Sprintf("UnresolvedRelation[%s]", u.Name) }

// Relation is a resolved reference to a base table: a name plus its
// catalog-derived, already-attributed schema. Produced by
// ResolveRelations from a Catalog lookup.
type Relation struct {
	Name   string
	Schema []*expr.AttributeRef
}

func NewRelation(name string, schema []*expr.AttributeRef) *Relation {
	return &Relation{Name: name, Schema: schema}
}

func (r *Relation) Children() []LogicalPlan             { return nil }
func (r *Relation) WithChildren(_ []LogicalPlan) LogicalPlan { return r }
func (r *Relation) Output() []*expr.AttributeRef        { return r.Schema }
func (r *Relation) Resolved() bool                      { return true }
func (r *Relation) String() string {
	names := make([]string, len(r.Schema))
	for i, a := range r.Schema {
		names[i] = a.Name
	}
	return fmt.Sprintf("Relation[%s](%s)", r.Name, strings.Join(names, ", "))
}

// LocalRelation is a literal, in-memory relation: a fixed schema plus
// materialized rows, used for fixture-backed tests and worked
// examples. Always resolved — its schema is given, not looked up.
type LocalRelation struct {
	Schema []*expr.AttributeRef
	Rows   []types.Row
}

func NewLocalRelation(schema []*expr.AttributeRef, rows []types.Row) *LocalRelation {
	return &LocalRelation{Schema: schema, Rows: rows}
}

func (l *LocalRelation) Children() []LogicalPlan             { return nil }
func (l *LocalRelation) WithChildren(_ []LogicalPlan) LogicalPlan { return l }
func (l *LocalRelation) Output() []*expr.AttributeRef        { return l.Schema }
func (l *LocalRelation) Resolved() bool                      { return true }
func (l *LocalRelation) String() string {
	return fmt.Sprintf("LocalRelation(%d cols, %d rows)", len(l.Schema), len(l.Rows))
}
