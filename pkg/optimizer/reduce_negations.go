package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// ReduceNegationsRule simplifies Not nodes in place, independent of the
// full CNF pass: double negation, inverted comparisons, swapping an
// If's branches when its condition is negated, and the
// tautology/contradiction shortcuts for a
// conjunct or disjunct negating its sibling.
type ReduceNegationsRule struct{}

func (ReduceNegationsRule) Name() string { return "ReduceNegations" }

func (ReduceNegationsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return mapExprsPre(p, reduceNegation), nil
}

func reduceNegation(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Not:
		switch c := v.Child.(type) {
		case *expr.Not:
			return c.Child
		case *expr.Comparison:
			return expr.NewComparison(invertCompareOp(c.Op), c.L, c.R)
		case *expr.IsNull:
			return expr.NewIsNotNull(c.Child)
		case *expr.IsNotNull:
			return expr.NewIsNull(c.Child)
		}
	case *expr.If:
		if not, ok := v.Cond.(*expr.Not); ok {
			return expr.NewIf(not.Child, v.Else, v.Then)
		}
	case *expr.And:
		if isNegationOf(v.L, v.R) || isNegationOf(v.R, v.L) {
			return expr.NewLiteral(false, types.Bool)
		}
	case *expr.Or:
		if isNegationOf(v.L, v.R) || isNegationOf(v.R, v.L) {
			return expr.NewLiteral(true, types.Bool)
		}
	}
	return e
}

func isNegationOf(a, b expr.Expr) bool {
	not, ok := a.(*expr.Not)
	return ok && expr.SameOrEqual(not.Child, b)
}
