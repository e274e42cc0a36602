package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ReduceCastsRule drops a Cast that is already a no-op, and collapses a
// Cast of a Cast to just the outer target type. Unconditionally
// dropping the inner cast is sound only because ApplyImplicitCasts
// never inserts a narrowing cast (see types.CanImplicitCast); it is not
// safe in general for an arbitrary nested-cast chain.
type ReduceCastsRule struct{}

func (ReduceCastsRule) Name() string { return "ReduceCasts" }

func (ReduceCastsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return mapExprsPre(p, reduceCast), nil
}

func reduceCast(e expr.Expr) expr.Expr {
	c, ok := e.(*expr.Cast)
	if !ok {
		return e
	}
	if inner, ok := c.Child.(*expr.Cast); ok {
		return expr.NewCast(inner.Child, c.Typ)
	}
	if c.Child.Type() == c.Typ {
		return c.Child
	}
	return e
}
