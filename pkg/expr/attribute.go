package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// UnresolvedAttribute is a bare column reference as produced by a
// frontend, before the Analyzer has bound it to a concrete relation
// column. NameParts holds a dotted reference split on '.', e.g.
// ["t", "id"] for "t.id"; an unqualified reference has len(NameParts)==1.
type UnresolvedAttribute struct {
	NameParts []string
}

// NewUnresolvedAttribute builds an unresolved reference from its dotted
// name parts.
func NewUnresolvedAttribute(parts ...string) *UnresolvedAttribute {
	return &UnresolvedAttribute{NameParts: parts}
}

func (u *UnresolvedAttribute) Children() []Expr          { return nil }
func (u *UnresolvedAttribute) WithChildren(_ []Expr) Expr { return u }
func (u *UnresolvedAttribute) Type() types.DataType       { return types.Unknown }
func (u *UnresolvedAttribute) Resolved() bool             { return false }
func (u *UnresolvedAttribute) Nullable() bool             { return true }
func (u *UnresolvedAttribute) String() string {
	out := u.NameParts[0]
	for _, p := range u.NameParts[1:] {
		out += "." + p
	}
	return out
}

// Qualifier returns the table-qualifier part of the reference and
// whether one was given ("t" for "t.id"; "" / false for "id").
func (u *UnresolvedAttribute) Qualifier() (string, bool) {
	if len(u.NameParts) < 2 {
		return "", false
	}
	return u.NameParts[len(u.NameParts)-2], true
}

// Name returns the unqualified column name part of the reference.
func (u *UnresolvedAttribute) Name() string {
	return u.NameParts[len(u.NameParts)-1]
}

// AttributeRef is a resolved reference to exactly one output column of
// some relation, identified by its stable AttrID rather than its name.
// Two AttributeRefs with the same AttrID denote the same logical column
// even if produced by different Project aliases.
type AttributeRef struct {
	ID         AttrID
	Name       string
	Typ        types.DataType
	IsNullable bool
}

// NewAttributeRef builds a resolved reference. Callers that need a
// fresh identity should pair this with NewAttrID(); callers threading
// an existing column through a rewrite should reuse its AttrID.
func NewAttributeRef(id AttrID, name string, typ types.DataType, nullable bool) *AttributeRef {
	return &AttributeRef{ID: id, Name: name, Typ: typ, IsNullable: nullable}
}

func (a *AttributeRef) Children() []Expr          { return nil }
func (a *AttributeRef) WithChildren(_ []Expr) Expr { return a }
func (a *AttributeRef) Type() types.DataType       { return a.Typ }
func (a *AttributeRef) Resolved() bool             { return true }
func (a *AttributeRef) Nullable() bool             { return a.IsNullable }
func (a *AttributeRef) String() string             { return fmt.Sprintf("%s#%s", a.Name, a.ID) }

// WithName returns a copy of a renamed to name, keeping its AttrID —
// used when a Project alias changes the output label but not identity.
func (a *AttributeRef) WithName(name string) *AttributeRef {
	cp := *a
	cp.Name = name
	return &cp
}

// Star represents an unexpanded "*" or "t.*" projection item; it is
// eliminated by the Analyzer's ExpandStars rule before type checking
// and should never reach the Optimizer.
type Star struct {
	Qualifier string
}

func (s *Star) Children() []Expr          { return nil }
func (s *Star) WithChildren(_ []Expr) Expr { return s }
func (s *Star) Type() types.DataType       { return types.Unknown }
func (s *Star) Resolved() bool             { return false }
func (s *Star) Nullable() bool             { return true }
func (s *Star) String() string {
	if s.Qualifier == "" {
		return "*"
	}
	return s.Qualifier + ".*"
}
