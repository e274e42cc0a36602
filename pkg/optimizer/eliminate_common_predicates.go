package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// EliminateCommonPredicatesRule collapses a conjunction or disjunction
// of two structurally-equal operands to just one of them, and rewrites
// an If whose branches are equal into a Coalesce that still evaluates
// the condition (preserving any nullability side effect of doing so)
// but no longer branches on it.
type EliminateCommonPredicatesRule struct{}

func (EliminateCommonPredicatesRule) Name() string { return "EliminateCommonPredicates" }

func (EliminateCommonPredicatesRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return mapExprsPre(p, eliminateCommonPredicate), nil
}

func eliminateCommonPredicate(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.And:
		if expr.SameOrEqual(v.L, v.R) {
			return v.L
		}
	case *expr.Or:
		if expr.SameOrEqual(v.L, v.R) {
			return v.L
		}
	case *expr.If:
		if expr.SameOrEqual(v.Then, v.Else) {
			return expr.NewCoalesce(v.Cond, v.Then)
		}
	}
	return e
}
