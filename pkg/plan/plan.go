// Package plan implements the logical-plan algebra: relations,
// projections, filters, joins, and limits, all rewritable by the same
// two universal traversals the expr package defines for scalar
// expressions. LogicalPlan is a closed set of tagged struct node
// kinds, not an open interface hierarchy.
package plan

import "github.com/sqlplan/logicplan/pkg/expr"

// LogicalPlan is any node of a logical query plan tree.
type LogicalPlan interface {
	// Children returns this node's direct plan operands.
	Children() []LogicalPlan

	// WithChildren returns a copy of this node with its children
	// replaced, same length and order as Children().
	WithChildren(children []LogicalPlan) LogicalPlan

	// Output returns the resolved output schema of this node. Before
	// the Analyzer resolves a subtree, Output may be empty or carry
	// attributes with types.Unknown.
	Output() []*expr.AttributeRef

	// Resolved reports whether this node (not necessarily its
	// descendants) has bound every relation and attribute reference it
	// directly mentions.
	Resolved() bool

	// String renders the plan node for PrettyTree and diagnostics.
	String() string
}

// ExprHolder is implemented by plan nodes that carry scalar
// expressions (Project's projection list, Filter's condition, Join's
// ON clause) — the hook ApplyImplicitCastsRule, NullPropagation, and
// other expression-level rules use to reach into a plan node.
type ExprHolder interface {
	LogicalPlan
	// Exprs returns the expressions this node directly holds, in a
	// fixed order.
	Exprs() []expr.Expr
	// WithExprs returns a copy of this node with its expressions
	// replaced, same length and order as Exprs().
	WithExprs(exprs []expr.Expr) LogicalPlan
}

// TransformDown applies fn to this node first (pre-order), then
// recurses into the (possibly replaced) node's children.
func TransformDown(p LogicalPlan, fn func(LogicalPlan) LogicalPlan) LogicalPlan {
	transformed := fn(p)
	children := transformed.Children()
	if len(children) == 0 {
		return transformed
	}
	newChildren := make([]LogicalPlan, len(children))
	changed := false
	for i, c := range children {
		nc := TransformDown(c, fn)
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return transformed
	}
	return transformed.WithChildren(newChildren)
}

// TransformUp recurses into children first (post-order), then applies
// fn to the (possibly rebuilt) node.
func TransformUp(p LogicalPlan, fn func(LogicalPlan) LogicalPlan) LogicalPlan {
	children := p.Children()
	if len(children) == 0 {
		return fn(p)
	}
	newChildren := make([]LogicalPlan, len(children))
	changed := false
	for i, c := range children {
		nc := TransformUp(c, fn)
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	node := p
	if changed {
		node = p.WithChildren(newChildren)
	}
	return fn(node)
}

// TransformExpressions rewrites every ExprHolder node in p by passing
// each of its expressions through fn (applied post-order within each
// expression), leaving the plan shape unchanged. Used by the optimizer's
// ReduceAliasesRule.
func TransformExpressions(p LogicalPlan, fn func(expr.Expr) expr.Expr) LogicalPlan {
	return TransformUp(p, func(n LogicalPlan) LogicalPlan {
		holder, ok := n.(ExprHolder)
		if !ok {
			return n
		}
		exprs := holder.Exprs()
		newExprs := make([]expr.Expr, len(exprs))
		changed := false
		for i, e := range exprs {
			ne := expr.TransformUp(e, fn)
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

// IsResolved reports whether p and every descendant is Resolved().
func IsResolved(p LogicalPlan) bool {
	ok := true
	TransformDown(p, func(n LogicalPlan) LogicalPlan {
		if !n.Resolved() {
			ok = false
		}
		return n
	})
	return ok
}

// StrictlyTyped reports whether p is fully resolved and every
// expression it holds (transitively) is expr.StrictlyTyped.
func StrictlyTyped(p LogicalPlan) bool {
	if !IsResolved(p) {
		return false
	}
	ok := true
	TransformDown(p, func(n LogicalPlan) LogicalPlan {
		if holder, isHolder := n.(ExprHolder); isHolder {
			for _, e := range holder.Exprs() {
				if !expr.StrictlyTyped(e) {
					ok = false
				}
			}
		}
		return n
	})
	return ok
}
