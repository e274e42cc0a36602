package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ReduceFiltersRule merges two directly nested Filters into one, ANDing
// their conditions, so later rules (CNFConversion, the filter push-down
// rules) see a single predicate per node.
type ReduceFiltersRule struct{}

func (ReduceFiltersRule) Name() string { return "ReduceFilters" }

func (ReduceFiltersRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformUp(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		outer, ok := n.(*plan.Filter)
		if !ok {
			return n
		}
		inner, ok := outer.Child.(*plan.Filter)
		if !ok {
			return n
		}
		return plan.NewFilter(expr.NewAnd(inner.Condition, outer.Condition), inner.Child)
	}), nil
}
