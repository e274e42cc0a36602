package analyzer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ExpandStarsRule replaces a Star projection item with one
// *expr.AttributeRef per column of the Project's child output, once
// that child is resolved. Every Star, unqualified "*" or qualified
// "t.*" alike, expands to every column of the child output; the
// qualifier is not consulted.
type ExpandStarsRule struct{}

func (ExpandStarsRule) Name() string { return "ExpandStars" }

func (ExpandStarsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformUp(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		proj, ok := n.(*plan.Project)
		if !ok {
			return n
		}
		if !proj.Child.Resolved() {
			return n
		}
		childOutput := proj.Child.Output()
		if len(childOutput) == 0 {
			return n
		}

		changed := false
		newProjections := make([]expr.Expr, 0, len(proj.Projections))
		for _, item := range proj.Projections {
			star, isStar := item.(*expr.Star)
			if !isStar {
				newProjections = append(newProjections, item)
				continue
			}
			changed = true
			for _, col := range childOutput {
				newProjections = append(newProjections, col)
			}
			_ = star
		}
		if !changed {
			return n
		}
		cp := *proj
		cp.Projections = newProjections
		return &cp
	}), nil
}
