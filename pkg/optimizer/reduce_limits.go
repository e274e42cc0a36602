package optimizer

import "github.com/sqlplan/logicplan/pkg/plan"

// ReduceLimitsRule merges two directly nested Limits into one carrying
// the tighter (smaller) bound. Limit.N is always a resolved literal
// count in this algebra (no parameterized LIMIT), so the tighter bound
// is computed directly rather than built as an If(n<m, n, m) expression
// for a later fold pass to resolve.
type ReduceLimitsRule struct{}

func (ReduceLimitsRule) Name() string { return "ReduceLimits" }

func (ReduceLimitsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformUp(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		outer, ok := n.(*plan.Limit)
		if !ok {
			return n
		}
		inner, ok := outer.Child.(*plan.Limit)
		if !ok {
			return n
		}
		bound := outer.N
		if inner.N < bound {
			bound = inner.N
		}
		return plan.NewLimit(bound, inner.Child)
	}), nil
}
