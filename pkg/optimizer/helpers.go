// Package optimizer implements the Optimizer: the rule batch that
// rewrites a resolved, strictly typed plan into a semantically
// equivalent plan with constants folded, predicates simplified, and
// filters/projects/limits pushed as close to the data as possible.
package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// mapExprsPre rewrites every ExprHolder node's expressions via fn,
// applied pre-order within each expression tree (expr.TransformDown).
// Most Optimizer rules are purely expression-local and don't care about
// plan traversal order, only about seeing the root of each subexpression
// before its children.
func mapExprsPre(p plan.LogicalPlan, fn func(expr.Expr) expr.Expr) plan.LogicalPlan {
	return plan.TransformUp(p, func(n plan.LogicalPlan) plan.LogicalPlan {
		holder, ok := n.(plan.ExprHolder)
		if !ok {
			return n
		}
		exprs := holder.Exprs()
		newExprs := make([]expr.Expr, len(exprs))
		changed := false
		for i, e := range exprs {
			ne := expr.TransformDown(e, fn)
			newExprs[i] = ne
			if ne != e {
				changed = true
			}
		}
		if !changed {
			return n
		}
		return holder.WithExprs(newExprs)
	})
}

func isTrueLiteral(e expr.Expr) bool {
	l, ok := e.(*expr.Literal)
	return ok && !l.IsNull() && l.Value == true
}

func isFalseLiteral(e expr.Expr) bool {
	l, ok := e.(*expr.Literal)
	return ok && !l.IsNull() && l.Value == false
}

func isNullLiteral(e expr.Expr) bool {
	l, ok := e.(*expr.Literal)
	return ok && l.IsNull()
}

// projectionSubstitution builds the attribute-id substitution map a
// Project's projections define: an Alias contributes its minted id
// mapped to the expression it computes, an AttributeRef contributes the
// identity mapping. Used by ReduceProjects and PushFiltersThroughProjects
// to rewrite an expression that references a Project's output in terms
// of the Project's child.
func projectionSubstitution(projs []expr.Expr) map[expr.AttrID]expr.Expr {
	m := make(map[expr.AttrID]expr.Expr, len(projs))
	for _, e := range projs {
		switch v := e.(type) {
		case *expr.Alias:
			m[v.ID] = v.Child
		case *expr.AttributeRef:
			m[v.ID] = v
		}
	}
	return m
}

func attrIDSet(refs []*expr.AttributeRef) expr.AttributeSet {
	set := expr.NewAttributeSet()
	for _, r := range refs {
		set[r.ID] = struct{}{}
	}
	return set
}

// splitConjuncts flattens a tree of And nodes into its leaf conjuncts,
// left to right.
func splitConjuncts(e expr.Expr) []expr.Expr {
	if a, ok := e.(*expr.And); ok {
		return append(splitConjuncts(a.L), splitConjuncts(a.R)...)
	}
	return []expr.Expr{e}
}

func andAll(es []expr.Expr) expr.Expr {
	result := es[0]
	for _, e := range es[1:] {
		result = expr.NewAnd(result, e)
	}
	return result
}

func orAll(es []expr.Expr) expr.Expr {
	result := es[0]
	for _, e := range es[1:] {
		result = expr.NewOr(result, e)
	}
	return result
}

func projectionsMatchOutput(projs []expr.Expr, output []*expr.AttributeRef) bool {
	if len(projs) != len(output) {
		return false
	}
	for i, e := range projs {
		ref, ok := e.(*expr.AttributeRef)
		if !ok || ref.ID != output[i].ID {
			return false
		}
	}
	return true
}

func invertCompareOp(op expr.CompareOp) expr.CompareOp {
	switch op {
	case expr.Eq:
		return expr.NotEq
	case expr.NotEq:
		return expr.Eq
	case expr.Lt:
		return expr.GtEq
	case expr.LtEq:
		return expr.Gt
	case expr.Gt:
		return expr.LtEq
	case expr.GtEq:
		return expr.Lt
	default:
		return op
	}
}
