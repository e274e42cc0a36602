package optimizer

import "github.com/sqlplan/logicplan/pkg/plan"

// PushProjectsThroughLimitsRule moves a Project below the Limit it sits
// on top of. Safe because projection is row-preserving: narrowing
// columns before or after capping row count yields the same rows.
type PushProjectsThroughLimitsRule struct{}

func (PushProjectsThroughLimitsRule) Name() string { return "PushProjectsThroughLimits" }

func (PushProjectsThroughLimitsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		proj, ok := n.(*plan.Project)
		if !ok {
			return n
		}
		lim, ok := proj.Child.(*plan.Limit)
		if !ok {
			return n
		}
		return plan.NewLimit(lim.N, plan.NewProject(proj.Projections, lim.Child))
	}), nil
}
