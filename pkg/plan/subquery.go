package plan

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/expr"
)

// SubqueryAlias names Child as Alias, recording the name an otherwise
// anonymous derived relation (or a base relation referenced under a
// different name) was given. ResolveReferences does not consult the
// alias (it matches unqualified column names only), and
// EliminateSubqueries strips these once Child is resolved.
type SubqueryAlias struct {
	Alias string
	Child LogicalPlan
}

func NewSubqueryAlias(alias string, child LogicalPlan) *SubqueryAlias {
	return &SubqueryAlias{Alias: alias, Child: child}
}

func (s *SubqueryAlias) Children() []LogicalPlan { return []LogicalPlan{s.Child} }

func (s *SubqueryAlias) WithChildren(c []LogicalPlan) LogicalPlan {
	cp := *s
	cp.Child = c[0]
	return &cp
}

func (s *SubqueryAlias) Output() []*expr.AttributeRef { return s.Child.Output() }
func (s *SubqueryAlias) Resolved() bool               { return s.Child.Resolved() }
func (s *SubqueryAlias) String() string               { return fmt.Sprintf("SubqueryAlias[%s]", s.Alias) }
