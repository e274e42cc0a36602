package optimizer

import "github.com/sqlplan/logicplan/pkg/plan"

// FoldConstantFiltersRule eliminates a Filter whose condition has
// folded to a constant: TRUE drops the Filter entirely, FALSE replaces
// it with an empty LocalRelation carrying the same schema.
type FoldConstantFiltersRule struct{}

func (FoldConstantFiltersRule) Name() string { return "FoldConstantFilters" }

func (FoldConstantFiltersRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformUp(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		f, ok := n.(*plan.Filter)
		if !ok {
			return n
		}
		if isTrueLiteral(f.Condition) {
			return f.Child
		}
		if isFalseLiteral(f.Condition) {
			return plan.NewLocalRelation(f.Child.Output(), nil)
		}
		return n
	}), nil
}
