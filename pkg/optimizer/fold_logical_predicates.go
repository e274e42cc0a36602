package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// FoldLogicalPredicatesRule simplifies boolean connectives that a
// constant or a repeated operand makes trivial, without needing both
// sides to be fully foldable.
type FoldLogicalPredicatesRule struct{}

func (FoldLogicalPredicatesRule) Name() string { return "FoldLogicalPredicates" }

func (FoldLogicalPredicatesRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return mapExprsPre(p, foldLogicalPredicate), nil
}

func foldLogicalPredicate(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Or:
		if isTrueLiteral(v.L) || isTrueLiteral(v.R) {
			return expr.NewLiteral(true, types.Bool)
		}
		if expr.SameOrEqual(v.L, v.R) {
			return v.L
		}
	case *expr.And:
		if isFalseLiteral(v.L) || isFalseLiteral(v.R) {
			return expr.NewLiteral(false, types.Bool)
		}
		if expr.SameOrEqual(v.L, v.R) {
			return v.L
		}
	case *expr.If:
		if isTrueLiteral(v.Cond) {
			return v.Then
		}
		if isFalseLiteral(v.Cond) {
			return v.Else
		}
	}
	return e
}
