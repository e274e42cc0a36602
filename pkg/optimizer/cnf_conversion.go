package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// CNFConversionRule rewrites every Filter's condition into Conjunctive
// Normal Form, so that PushFiltersThroughJoins can split it into
// independently pushable conjuncts.
type CNFConversionRule struct {
	MaxClauses int
}

func (CNFConversionRule) Name() string { return "CNFConversion" }

func (r CNFConversionRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		f, ok := n.(*plan.Filter)
		if !ok {
			return n
		}
		cnf := ToCNF(f.Condition, r.MaxClauses)
		if expr.SameOrEqual(cnf, f.Condition) {
			return n
		}
		return plan.NewFilter(cnf, f.Child)
	}), nil
}
