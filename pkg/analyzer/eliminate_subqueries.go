package analyzer

import "github.com/sqlplan/logicplan/pkg/plan"

// EliminateSubqueriesRule strips a SubqueryAlias wrapper once its child
// is resolved. Reference resolution matches unqualified column names
// only, so the alias carries nothing later rules use.
type EliminateSubqueriesRule struct{}

func (EliminateSubqueriesRule) Name() string { return "EliminateSubqueries" }

func (EliminateSubqueriesRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		alias, ok := n.(*plan.SubqueryAlias)
		if !ok {
			return n
		}
		if !alias.Child.Resolved() {
			return n
		}
		return alias.Child
	}), nil
}
