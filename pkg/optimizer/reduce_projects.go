package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ReduceProjectsRule eliminates a Project that reproduces its child's
// output verbatim, and merges a Project-of-a-Project into one Project
// by substituting the inner Project's aliases into the outer's
// projection list.
type ReduceProjectsRule struct{}

func (ReduceProjectsRule) Name() string { return "ReduceProjects" }

func (ReduceProjectsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		proj, ok := n.(*plan.Project)
		if !ok {
			return n
		}
		if projectionsMatchOutput(proj.Projections, proj.Child.Output()) {
			return proj.Child
		}
		inner, ok := proj.Child.(*plan.Project)
		if !ok {
			return n
		}
		subst := projectionSubstitution(inner.Projections)
		newProjs := make([]expr.Expr, len(proj.Projections))
		for i, e := range proj.Projections {
			newProjs[i] = expr.Substitute(e, subst)
		}
		return plan.NewProject(newProjs, inner.Child)
	}), nil
}
