package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// NullPropagationRule collapses expressions whose nullability is
// already statically known: a null-strict BinaryOperator with a literal
// NULL operand is always NULL; IsNull/IsNotNull over a provably
// non-nullable child are constant; a single-argument Coalesce reduces
// to its argument (or an explicit NULL cast) once that argument's own
// nullability is known.
//
// Deliberately scoped to expr.BinaryOperator rather than every binary
// expression node: And/Or are excluded by that interface precisely
// because they are not null-strict (see expr.BinaryOperator's doc).
type NullPropagationRule struct{}

func (NullPropagationRule) Name() string { return "NullPropagation" }

func (NullPropagationRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return mapExprsPre(p, propagateNull), nil
}

func propagateNull(e expr.Expr) expr.Expr {
	if bin, ok := e.(expr.BinaryOperator); ok {
		if isNullLiteral(bin.Left()) || isNullLiteral(bin.Right()) {
			return expr.NewCast(expr.NullLiteral(), e.Type())
		}
	}
	switch v := e.(type) {
	case *expr.IsNull:
		if !v.Child.Nullable() {
			return expr.NewLiteral(false, types.Bool)
		}
	case *expr.IsNotNull:
		if !v.Child.Nullable() {
			return expr.NewLiteral(true, types.Bool)
		}
	case *expr.Coalesce:
		if len(v.Args) == 1 {
			arg := v.Args[0]
			if isNullLiteral(arg) {
				return expr.NewCast(expr.NullLiteral(), v.Type())
			}
			if !arg.Nullable() {
				return arg
			}
		}
	}
	return e
}
