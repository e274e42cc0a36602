// Package expr implements the scalar expression algebra: literals,
// attribute references, and operators, all rewritable by the two
// universal tree traversals TransformDown and TransformUp. Expr is a
// closed set of tagged struct node kinds, not an open interface
// hierarchy a caller could extend.
package expr

import "github.com/sqlplan/logicplan/pkg/types"

// Expr is any scalar expression node. Implementations are immutable:
// every transformation returns a new node rather than mutating the
// receiver.
type Expr interface {
	// Children returns this node's direct expression operands, in a
	// fixed, semantically-meaningful order.
	Children() []Expr

	// WithChildren returns a copy of this node with its children
	// replaced by newChildren, which must have the same length and
	// order as Children(). Leaf nodes return themselves unchanged.
	WithChildren(newChildren []Expr) Expr

	// Type reports this expression's static type. Before the Analyzer
	// resolves a subtree, Type may return types.Unknown.
	Type() types.DataType

	// Resolved reports whether every attribute this expression touches
	// has been bound to a concrete column and its type is known.
	Resolved() bool

	// Nullable reports whether this expression may evaluate to SQL
	// NULL. NullPropagation consults this to fold IsNull/IsNotNull
	// over a provably non-null operand.
	Nullable() bool

	// String renders the expression for diagnostics and plan dumps.
	String() string
}

// TransformDown applies fn to this node first, then recurses into the
// (possibly replaced) node's children. fn is called top-down, pre-order.
func TransformDown(e Expr, fn func(Expr) Expr) Expr {
	transformed := fn(e)
	children := transformed.Children()
	if len(children) == 0 {
		return transformed
	}
	newChildren := make([]Expr, len(children))
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

// TransformUp recurses into children first, then applies fn to the
// (possibly rebuilt) node. fn is called bottom-up, post-order.
func TransformUp(e Expr, fn func(Expr) Expr) Expr {
	children := e.Children()
	if len(children) == 0 {
		return fn(e)
	}
	newChildren := make([]Expr, len(children))
	changed := false
	for i, c := range children {
		nc := TransformUp(c, fn)
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	node := e
	if changed {
		node = e.WithChildren(newChildren)
	}
	return fn(node)
}

// Substitute rewrites every leaf in e that is AttributeRef-equal (by
// AttrID) to a key in repl with the corresponding replacement
// expression. Used by the optimizer's ReduceProjects and
// PushFiltersThroughProjects rules.
func Substitute(e Expr, repl map[AttrID]Expr) Expr {
	return TransformDown(e, func(n Expr) Expr {
		ref, ok := n.(*AttributeRef)
		if !ok {
			return n
		}
		if sub, ok := repl[ref.ID]; ok {
			return sub
		}
		return n
	})
}

// References returns the set of attribute ids e (and its descendants)
// read from.
func References(e Expr) AttributeSet {
	set := NewAttributeSet()
	TransformDown(e, func(n Expr) Expr {
		if ref, ok := n.(*AttributeRef); ok {
			set[ref.ID] = struct{}{}
		}
		return n
	})
	return set
}

// StrictlyTyped reports whether e and every descendant is Resolved()
// and carries a known (non-Unknown) type, the expression
// equivalent of plan.StrictlyTyped.
func StrictlyTyped(e Expr) bool {
	ok := true
	TransformDown(e, func(n Expr) Expr {
		if !n.Resolved() {
			ok = false
		}
		t := n.Type()
		if t == types.Unknown {
			ok = false
		}
		return n
	})
	return ok
}
