package analyzer

import (
	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ResolveSelfJoinsRule rejects a resolved Join whose two sides share
// an output schema (by attribute id, in order) — the signature of a
// self-join, e.g. "FROM t AS a JOIN t AS b" where both sides resolved
// to the exact same underlying attribute ids. Intentionally
// conservative: it does not attempt to rename the right-hand side's
// attributes to disambiguate, since nothing downstream of the
// Analyzer-Optimizer pipeline defined here tracks which renamed copy a
// later qualified reference meant.
type ResolveSelfJoinsRule struct{}

func (ResolveSelfJoinsRule) Name() string { return "ResolveSelfJoins" }

func (ResolveSelfJoinsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return transformDownErr(p, func(n plan.LogicalPlan) (plan.LogicalPlan, error) {
		join, ok := n.(*plan.Join)
		if !ok {
			return n, nil
		}
		if !join.Left.Resolved() || !join.Right.Resolved() {
			return n, nil
		}
		if sameOutput(join.Left.Output(), join.Right.Output()) {
			return nil, compileerr.NewUnsupported("Self-join is not supported yet")
		}
		return n, nil
	})
}

func sameOutput(a, b []*expr.AttributeRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
