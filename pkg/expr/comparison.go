package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// CompareOp names the operator of a Comparison node.
type CompareOp string

const (
	Eq    CompareOp = "="
	NotEq CompareOp = "<>"
	Lt    CompareOp = "<"
	LtEq  CompareOp = "<="
	Gt    CompareOp = ">"
	GtEq  CompareOp = ">="
)

// Comparison is a binary relational operator over two operands of a
// common (possibly promoted) type. Always yields BOOLEAN, and like
// Arithmetic is null-strict.
type Comparison struct {
	Op   CompareOp
	L, R Expr
}

// NewComparison builds a binary comparison expression.
func NewComparison(op CompareOp, l, r Expr) *Comparison {
	return &Comparison{Op: op, L: l, R: r}
}

func (c *Comparison) Children() []Expr { return []Expr{c.L, c.R} }

func (c *Comparison) WithChildren(ch []Expr) Expr {
	cp := *c
	cp.L, cp.R = ch[0], ch[1]
	return &cp
}

func (c *Comparison) Left() Expr  { return c.L }
func (c *Comparison) Right() Expr { return c.R }

func (c *Comparison) WithOperands(l, r Expr) Expr {
	cp := *c
	cp.L, cp.R = l, r
	return &cp
}

func (c *Comparison) Type() types.DataType { return types.Bool }
func (c *Comparison) Resolved() bool       { return c.L.Resolved() && c.R.Resolved() }
func (c *Comparison) Nullable() bool       { return c.L.Nullable() || c.R.Nullable() }
func (c *Comparison) String() string       { return fmt.Sprintf("(%s %s %s)", c.L, c.Op, c.R) }
