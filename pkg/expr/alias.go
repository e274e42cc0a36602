package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// Alias names a child expression's result and stamps it with a fresh
// AttrID, minting a new output column. Project uses Alias for every
// non-pass-through projection item.
type Alias struct {
	Child Expr
	Name  string
	ID    AttrID
}

// NewAlias wraps child under name, minting a fresh attribute identity.
func NewAlias(child Expr, name string) *Alias {
	return &Alias{Child: child, Name: name, ID: NewAttrID()}
}

func (a *Alias) Children() []Expr { return []Expr{a.Child} }

func (a *Alias) WithChildren(c []Expr) Expr {
	cp := *a
	cp.Child = c[0]
	return &cp
}

func (a *Alias) Type() types.DataType { return a.Child.Type() }
func (a *Alias) Resolved() bool       { return a.Child.Resolved() }
func (a *Alias) Nullable() bool       { return a.Child.Nullable() }
func (a *Alias) String() string       { return fmt.Sprintf("%s AS %s#%s", a.Child, a.Name, a.ID) }

// ToAttributeRef produces the AttributeRef an output column for this
// alias would look like, for use when building a parent's output schema.
func (a *Alias) ToAttributeRef() *AttributeRef {
	return NewAttributeRef(a.ID, a.Name, a.Type(), a.Child.Nullable())
}
