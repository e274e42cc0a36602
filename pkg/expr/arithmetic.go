package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// ArithOp names the operator of an Arithmetic node.
type ArithOp string

const (
	Add ArithOp = "+"
	Sub ArithOp = "-"
	Mul ArithOp = "*"
	Div ArithOp = "/"
	Mod ArithOp = "%"
)

// Arithmetic is a binary numeric operator. It is null-strict: if
// either operand is SQL NULL, the result is NULL (enforced by
// NullPropagation and by evaluation, not by this struct).
type Arithmetic struct {
	Op          ArithOp
	L, R        Expr
}

// NewArithmetic builds a binary arithmetic expression.
func NewArithmetic(op ArithOp, l, r Expr) *Arithmetic {
	return &Arithmetic{Op: op, L: l, R: r}
}

func (a *Arithmetic) Children() []Expr { return []Expr{a.L, a.R} }

func (a *Arithmetic) WithChildren(c []Expr) Expr {
	cp := *a
	cp.L, cp.R = c[0], c[1]
	return &cp
}

func (a *Arithmetic) Left() Expr  { return a.L }
func (a *Arithmetic) Right() Expr { return a.R }

func (a *Arithmetic) WithOperands(l, r Expr) Expr {
	cp := *a
	cp.L, cp.R = l, r
	return &cp
}

func (a *Arithmetic) Type() types.DataType {
	t, ok := types.Promote(a.L.Type(), a.R.Type())
	if !ok {
		return types.Unknown
	}
	return t
}

func (a *Arithmetic) Resolved() bool { return a.L.Resolved() && a.R.Resolved() }
func (a *Arithmetic) Nullable() bool { return a.L.Nullable() || a.R.Nullable() }
func (a *Arithmetic) String() string { return fmt.Sprintf("(%s %s %s)", a.L, a.Op, a.R) }
