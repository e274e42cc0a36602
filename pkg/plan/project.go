package plan

import (
	"fmt"
	"strings"

	"github.com/sqlplan/logicplan/pkg/expr"
)

// Project computes a derived set of columns over Child: each entry of
// Projections is either a pass-through *expr.AttributeRef or an
// *expr.Alias naming a computed expression.
type Project struct {
	Projections []expr.Expr
	Child       LogicalPlan
}

func NewProject(projections []expr.Expr, child LogicalPlan) *Project {
	return &Project{Projections: projections, Child: child}
}

func (p *Project) Children() []LogicalPlan { return []LogicalPlan{p.Child} }

func (p *Project) WithChildren(c []LogicalPlan) LogicalPlan {
	cp := *p
	cp.Child = c[0]
	return &cp
}

func (p *Project) Exprs() []expr.Expr { return p.Projections }

func (p *Project) WithExprs(exprs []expr.Expr) LogicalPlan {
	cp := *p
	cp.Projections = exprs
	return &cp
}

// Output derives one AttributeRef per projection item: an Alias
// contributes its own minted id, an AttributeRef passes through
// unchanged, anything else (not yet resolved) is skipped.
func (p *Project) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, 0, len(p.Projections))
	for _, e := range p.Projections {
		switch v := e.(type) {
		case *expr.Alias:
			out = append(out, v.ToAttributeRef())
		case *expr.AttributeRef:
			out = append(out, v)
		}
	}
	return out
}

func (p *Project) Resolved() bool {
	for _, e := range p.Projections {
		if !e.Resolved() {
			return false
		}
		if _, isStar := e.(*expr.Star); isStar {
			return false
		}
	}
	return true
}

func (p *Project) String() string {
	parts := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project[%s]", strings.Join(parts, ", "))
}
