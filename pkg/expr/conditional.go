package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// If evaluates Cond and returns Then when it is TRUE, Else otherwise
// (including when Cond is NULL or FALSE) — the ternary-free way of
// expressing CASE WHEN ... THEN ... ELSE ... END for a single branch.
type If struct {
	Cond, Then, Else Expr
}

func NewIf(cond, then, els Expr) *If { return &If{Cond: cond, Then: then, Else: els} }

func (i *If) Children() []Expr { return []Expr{i.Cond, i.Then, i.Else} }

func (i *If) WithChildren(c []Expr) Expr {
	cp := *i
	cp.Cond, cp.Then, cp.Else = c[0], c[1], c[2]
	return &cp
}

func (i *If) Type() types.DataType {
	if t, ok := types.Promote(i.Then.Type(), i.Else.Type()); ok {
		return t
	}
	return types.Unknown
}

func (i *If) Resolved() bool {
	return i.Cond.Resolved() && i.Then.Resolved() && i.Else.Resolved()
}

func (i *If) Nullable() bool { return i.Then.Nullable() || i.Else.Nullable() }

func (i *If) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond, i.Then, i.Else)
}

// Coalesce returns the first non-NULL argument, or NULL if all are NULL.
type Coalesce struct {
	Args []Expr
}

func NewCoalesce(args ...Expr) *Coalesce { return &Coalesce{Args: args} }

func (c *Coalesce) Children() []Expr { return c.Args }

func (c *Coalesce) WithChildren(ch []Expr) Expr {
	cp := *c
	cp.Args = ch
	return &cp
}

func (c *Coalesce) Type() types.DataType {
	if len(c.Args) == 0 {
		return types.Unknown
	}
	t := c.Args[0].Type()
	for _, a := range c.Args[1:] {
		nt, ok := types.Promote(t, a.Type())
		if !ok {
			return types.Unknown
		}
		t = nt
	}
	return t
}

func (c *Coalesce) Resolved() bool {
	for _, a := range c.Args {
		if !a.Resolved() {
			return false
		}
	}
	return true
}

// Nullable is true only if every argument is nullable: Coalesce is
// non-NULL as soon as one argument is guaranteed non-NULL.
func (c *Coalesce) Nullable() bool {
	for _, a := range c.Args {
		if !a.Nullable() {
			return false
		}
	}
	return true
}

func (c *Coalesce) String() string {
	out := "COALESCE("
	for i, a := range c.Args {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	return out + ")"
}

// IsNull tests whether Child evaluates to SQL NULL. Always resolves to
// a non-NULL BOOLEAN, which is what lets NullPropagation treat
// IsNull(NULL) specially rather than folding it away like a strict op.
type IsNull struct {
	Child Expr
}

func NewIsNull(child Expr) *IsNull { return &IsNull{Child: child} }

func (n *IsNull) Children() []Expr { return []Expr{n.Child} }

func (n *IsNull) WithChildren(c []Expr) Expr {
	cp := *n
	cp.Child = c[0]
	return &cp
}

func (n *IsNull) Type() types.DataType { return types.Bool }
func (n *IsNull) Resolved() bool       { return n.Child.Resolved() }
func (n *IsNull) Nullable() bool       { return false }
func (n *IsNull) String() string       { return fmt.Sprintf("%s IS NULL", n.Child) }

// IsNotNull tests whether Child evaluates to a non-NULL value.
type IsNotNull struct {
	Child Expr
}

func NewIsNotNull(child Expr) *IsNotNull { return &IsNotNull{Child: child} }

func (n *IsNotNull) Children() []Expr { return []Expr{n.Child} }

func (n *IsNotNull) WithChildren(c []Expr) Expr {
	cp := *n
	cp.Child = c[0]
	return &cp
}

func (n *IsNotNull) Type() types.DataType { return types.Bool }
func (n *IsNotNull) Resolved() bool       { return n.Child.Resolved() }
func (n *IsNotNull) Nullable() bool       { return false }
func (n *IsNotNull) String() string       { return fmt.Sprintf("%s IS NOT NULL", n.Child) }
