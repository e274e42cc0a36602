package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// PushFiltersThroughProjectsRule moves a Filter below the Project it
// sits on top of, rewriting the condition in terms of the Project's
// child so the filter can in turn be pushed further down (e.g. into a
// Join by PushFiltersThroughJoins).
type PushFiltersThroughProjectsRule struct{}

func (PushFiltersThroughProjectsRule) Name() string { return "PushFiltersThroughProjects" }

func (PushFiltersThroughProjectsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		f, ok := n.(*plan.Filter)
		if !ok {
			return n
		}
		proj, ok := f.Child.(*plan.Project)
		if !ok {
			return n
		}
		subst := projectionSubstitution(proj.Projections)
		newCond := expr.Substitute(f.Condition, subst)
		return plan.NewProject(proj.Projections, plan.NewFilter(newCond, proj.Child))
	}), nil
}
