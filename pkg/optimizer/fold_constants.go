package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// FoldConstantsRule replaces any foldable subexpression with the
// Literal it evaluates to, walking each plan node's expressions
// bottom-up so that an outer foldable node sees its operands already
// folded.
type FoldConstantsRule struct{}

func (FoldConstantsRule) Name() string { return "FoldConstants" }

func (FoldConstantsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		holder, ok := n.(plan.ExprHolder)
		if !ok {
			return n
		}
		exprs := holder.Exprs()
		newExprs := make([]expr.Expr, len(exprs))
		changed := false
		for i, e := range exprs {
			ne := expr.TransformUp(e, func(sub expr.Expr) expr.Expr {
				if expr.Foldable(sub) {
					return expr.Fold(sub)
				}
				return sub
			})
			newExprs[i] = ne
			if ne != e {
				changed = true
			}
		}
		if !changed {
			return n
		}
		return holder.WithExprs(newExprs)
	}), nil
}
