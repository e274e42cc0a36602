package analyzer

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// ApplyImplicitCastsRule walks every resolved ExprHolder node's
// expressions and inserts a widening Cast around mismatched
// BinaryOperator operands, via expr.ApplyImplicitCasts. Left to the
// Analyzer (not the Optimizer) because it can only run once
// references are bound — an UnresolvedAttribute has no type to
// promote against. Fails with TypeCheckFailure when no implicit cast
// chain can reconcile an operator's operand types.
type ApplyImplicitCastsRule struct{}

func (ApplyImplicitCastsRule) Name() string { return "ApplyImplicitCasts" }

func (ApplyImplicitCastsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return transformUpErr(p, func(n plan.LogicalPlan) (plan.LogicalPlan, error) {
		holder, ok := n.(plan.ExprHolder)
		if !ok {
			return n, nil
		}
		exprs := holder.Exprs()
		newExprs := make([]expr.Expr, len(exprs))
		changed := false
		for i, e := range exprs {
			if !e.Resolved() {
				newExprs[i] = e
				continue
			}
			ne := expr.ApplyImplicitCasts(e)
			if err := checkTyped(ne); err != nil {
				return nil, err
			}
			newExprs[i] = ne
			if ne != e {
				changed = true
			}
		}
		if !changed {
			return n, nil
		}
		return holder.WithExprs(newExprs), nil
	})
}

// checkTyped reports a TypeCheckFailure if any BinaryOperator in e has
// operand types with no common promotion after cast insertion has
// already run — meaning no implicit cast chain could reconcile them.
func checkTyped(e expr.Expr) error {
	var failure error
	expr.TransformDown(e, func(n expr.Expr) expr.Expr {
		if failure != nil {
			return n
		}
		bin, ok := n.(expr.BinaryOperator)
		if !ok {
			return n
		}
		if _, ok := types.Promote(bin.Left().Type(), bin.Right().Type()); !ok {
			failure = compileerr.NewTypeCheckFailure(fmt.Sprintf("no implicit cast reconciles %s", n))
		}
		return n
	})
	return failure
}
