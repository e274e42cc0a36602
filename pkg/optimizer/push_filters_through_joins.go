package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// PushFiltersThroughJoinsRule splits a Filter sitting on an inner Join
// into the conjuncts that reference only the left side, only the right
// side, or both, pushing the single-side conjuncts down into a Filter
// on that side and folding any remainder into the join condition.
// Scoped to InnerJoin: pushing a predicate below an outer join can
// change which rows survive the join, so it is unsound there without
// additional null-aware rewriting this optimizer does not attempt.
type PushFiltersThroughJoinsRule struct {
	MaxClauses int
}

func (PushFiltersThroughJoinsRule) Name() string { return "PushFiltersThroughJoins" }

func (r PushFiltersThroughJoinsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		f, ok := n.(*plan.Filter)
		if !ok {
			return n
		}
		join, ok := f.Child.(*plan.Join)
		if !ok || join.Type != plan.InnerJoin {
			return n
		}

		leftIDs := attrIDSet(join.Left.Output())
		rightIDs := attrIDSet(join.Right.Output())

		conjuncts := splitConjuncts(ToCNF(f.Condition, r.MaxClauses))
		var left, right, remaining []expr.Expr
		for _, cj := range conjuncts {
			refs := expr.References(cj)
			switch {
			case refs.SubsetOf(leftIDs):
				left = append(left, cj)
			case refs.SubsetOf(rightIDs):
				right = append(right, cj)
			default:
				remaining = append(remaining, cj)
			}
		}
		if join.Condition != nil {
			remaining = append([]expr.Expr{join.Condition}, remaining...)
		}

		newLeft, newRight := join.Left, join.Right
		if len(left) > 0 {
			newLeft = plan.NewFilter(andAll(left), join.Left)
		}
		if len(right) > 0 {
			newRight = plan.NewFilter(andAll(right), join.Right)
		}
		var newCond expr.Expr
		if len(remaining) > 0 {
			newCond = andAll(remaining)
		}
		return plan.NewJoin(newLeft, newRight, plan.InnerJoin, newCond)
	}), nil
}
