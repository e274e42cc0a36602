package plan

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/expr"
)

// Limit caps Child's row count at N, the logical-plan equivalent of
// SQL's LIMIT clause.
type Limit struct {
	N     int64
	Child LogicalPlan
}

func NewLimit(n int64, child LogicalPlan) *Limit {
	return &Limit{N: n, Child: child}
}

func (l *Limit) Children() []LogicalPlan { return []LogicalPlan{l.Child} }

func (l *Limit) WithChildren(c []LogicalPlan) LogicalPlan {
	cp := *l
	cp.Child = c[0]
	return &cp
}

func (l *Limit) Output() []*expr.AttributeRef { return l.Child.Output() }
func (l *Limit) Resolved() bool               { return true }
func (l *Limit) String() string               { return fmt.Sprintf("Limit[%d]", l.N) }
