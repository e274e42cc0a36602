package plan

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/expr"
)

// Filter retains only the rows of Child for which Condition evaluates
// to TRUE (NULL and FALSE both exclude the row — three-valued WHERE
// semantics).
type Filter struct {
	Condition expr.Expr
	Child     LogicalPlan
}

func NewFilter(condition expr.Expr, child LogicalPlan) *Filter {
	return &Filter{Condition: condition, Child: child}
}

func (f *Filter) Children() []LogicalPlan { return []LogicalPlan{f.Child} }

func (f *Filter) WithChildren(c []LogicalPlan) LogicalPlan {
	cp := *f
	cp.Child = c[0]
	return &cp
}

func (f *Filter) Exprs() []expr.Expr { return []expr.Expr{f.Condition} }

func (f *Filter) WithExprs(exprs []expr.Expr) LogicalPlan {
	cp := *f
	cp.Condition = exprs[0]
	return &cp
}

func (f *Filter) Output() []*expr.AttributeRef { return f.Child.Output() }
func (f *Filter) Resolved() bool               { return f.Condition.Resolved() }
func (f *Filter) String() string               { return fmt.Sprintf("Filter[%s]", f.Condition) }
