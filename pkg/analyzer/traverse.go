package analyzer

import "github.com/sqlplan/logicplan/pkg/plan"

// transformUpErr is plan.TransformUp with early-abort error
// propagation: the first error any application of fn returns stops
// the walk immediately, matching the spec's "resolution and type
// errors abort compilation immediately" propagation rule.
func transformUpErr(p plan.LogicalPlan, fn func(plan.LogicalPlan) (plan.LogicalPlan, error)) (plan.LogicalPlan, error) {
	children := p.Children()
	if len(children) == 0 {
		return fn(p)
	}
	newChildren := make([]plan.LogicalPlan, len(children))
	changed := false
	for i, c := range children {
		nc, err := transformUpErr(c, fn)
		if err != nil {
			return nil, err
		}
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

// transformDownErr is plan.TransformDown with early-abort error
// propagation, applying fn at the current node before recursing into
// its (possibly replaced) children.
func transformDownErr(p plan.LogicalPlan, fn func(plan.LogicalPlan) (plan.LogicalPlan, error)) (plan.LogicalPlan, error) {
	transformed, err := fn(p)
	if err != nil {
		return nil, err
	}
	children := transformed.Children()
	if len(children) == 0 {
		return transformed, nil
	}
	newChildren := make([]plan.LogicalPlan, len(children))
	changed := false
	for i, c := range children {
		nc, err := transformDownErr(c, fn)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return transformed, nil
	}
	return transformed.WithChildren(newChildren), nil
}
