package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// And is three-valued conjunction: FALSE AND NULL is FALSE (not NULL),
// so And is deliberately NOT a BinaryOperator — NullPropagation must
// not treat a NULL operand here as making the whole expression NULL.
type And struct {
	L, R Expr
}

func NewAnd(l, r Expr) *And { return &And{L: l, R: r} }

func (a *And) Children() []Expr { return []Expr{a.L, a.R} }

func (a *And) WithChildren(c []Expr) Expr {
	cp := *a
	cp.L, cp.R = c[0], c[1]
	return &cp
}

func (a *And) Type() types.DataType { return types.Bool }
func (a *And) Resolved() bool       { return a.L.Resolved() && a.R.Resolved() }
func (a *And) Nullable() bool       { return a.L.Nullable() || a.R.Nullable() }
func (a *And) String() string       { return fmt.Sprintf("(%s AND %s)", a.L, a.R) }

// Or is three-valued disjunction: TRUE OR NULL is TRUE (not NULL). Like
// And, deliberately not a BinaryOperator for the same reason.
type Or struct {
	L, R Expr
}

func NewOr(l, r Expr) *Or { return &Or{L: l, R: r} }

func (o *Or) Children() []Expr { return []Expr{o.L, o.R} }

func (o *Or) WithChildren(c []Expr) Expr {
	cp := *o
	cp.L, cp.R = c[0], c[1]
	return &cp
}

func (o *Or) Type() types.DataType { return types.Bool }
func (o *Or) Resolved() bool       { return o.L.Resolved() && o.R.Resolved() }
func (o *Or) Nullable() bool       { return o.L.Nullable() || o.R.Nullable() }
func (o *Or) String() string       { return fmt.Sprintf("(%s OR %s)", o.L, o.R) }

// Not is logical negation. NOT NULL is NULL.
type Not struct {
	Child Expr
}

func NewNot(child Expr) *Not { return &Not{Child: child} }

func (n *Not) Children() []Expr { return []Expr{n.Child} }

func (n *Not) WithChildren(c []Expr) Expr {
	cp := *n
	cp.Child = c[0]
	return &cp
}

func (n *Not) Type() types.DataType { return types.Bool }
func (n *Not) Resolved() bool       { return n.Child.Resolved() }
func (n *Not) Nullable() bool       { return n.Child.Nullable() }
func (n *Not) String() string       { return fmt.Sprintf("NOT %s", n.Child) }
