package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// Cast explicitly converts Child's value to Typ. ApplyImplicitCasts
// inserts these around operands of mismatched numeric type; ReduceCasts
// collapses redundant nestings afterward.
type Cast struct {
	Child Expr
	Typ   types.DataType
}

// NewCast wraps child in an explicit cast to typ.
func NewCast(child Expr, typ types.DataType) *Cast {
	return &Cast{Child: child, Typ: typ}
}

func (c *Cast) Children() []Expr { return []Expr{c.Child} }

func (c *Cast) WithChildren(ch []Expr) Expr {
	cp := *c
	cp.Child = ch[0]
	return &cp
}

func (c *Cast) Type() types.DataType { return c.Typ }
func (c *Cast) Resolved() bool       { return c.Child.Resolved() }
func (c *Cast) Nullable() bool       { return c.Child.Nullable() }
func (c *Cast) String() string       { return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.Typ) }

// ApplyImplicitCasts walks e bottom-up and inserts a Cast around any
// operand of a BinaryOperator whose type differs from the operator's
// common promoted type, per types.Promote. It never narrows: an
// operand already at the wider type is left untouched, and operands
// with no promotable common type are left for TypeCheckFailure to
// catch rather than silently miscast.
func ApplyImplicitCasts(e Expr) Expr {
	return TransformUp(e, func(n Expr) Expr {
		bin, ok := n.(BinaryOperator)
		if !ok {
			return n
		}
		left, right := bin.Left(), bin.Right()
		if !left.Resolved() || !right.Resolved() {
			return n
		}
		common, ok := types.Promote(left.Type(), right.Type())
		if !ok {
			return n
		}
		newLeft, newRight := left, right
		if left.Type() != common && types.CanImplicitCast(left.Type(), common) {
			newLeft = NewCast(left, common)
		}
		if right.Type() != common && types.CanImplicitCast(right.Type(), common) {
			newRight = NewCast(right, common)
		}
		if newLeft == left && newRight == right {
			return n
		}
		return bin.WithOperands(newLeft, newRight)
	})
}
