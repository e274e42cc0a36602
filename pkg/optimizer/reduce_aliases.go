package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ReduceAliasesRule collapses an alias of an alias to a single Alias
// node, keeping the outer name and id (the identity a parent node may
// already reference) and reaching directly through to the inner child.
type ReduceAliasesRule struct{}

func (ReduceAliasesRule) Name() string { return "ReduceAliases" }

func (ReduceAliasesRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformExpressions(p, reduceAlias), nil
}

func reduceAlias(e expr.Expr) expr.Expr {
	outer, ok := e.(*expr.Alias)
	if !ok {
		return e
	}
	inner, ok := outer.Child.(*expr.Alias)
	if !ok {
		return e
	}
	return &expr.Alias{Child: inner.Child, Name: outer.Name, ID: outer.ID}
}
