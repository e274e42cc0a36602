package analyzer

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

var foldCase = cases.Fold()

// ResolveReferencesRule binds every UnresolvedAttribute reachable from
// an ExprHolder node to a concrete *expr.AttributeRef drawn from that
// node's child output, matching name case-insensitively (MySQL/TiDB
// identifier semantics — see SPEC_FULL.md §4.10). Only the unqualified
// column name is compared; a "t." qualifier is ignored. Multiple
// matching candidates fail with ResolutionFailure, naming the
// offending attribute; zero candidates leave the attribute unresolved
// for a later pass (Analyzer.Analyze reports a ResolutionFailure if it
// is still unresolved when the batch ends).
type ResolveReferencesRule struct{}

func (ResolveReferencesRule) Name() string { return "ResolveReferences" }

func (ResolveReferencesRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return transformUpErr(p, func(n plan.LogicalPlan) (plan.LogicalPlan, error) {
		holder, ok := n.(plan.ExprHolder)
		if !ok {
			return n, nil
		}
		candidates := childOutputs(n)
		if len(candidates) == 0 {
			return n, nil
		}

		exprs := holder.Exprs()
		newExprs := make([]expr.Expr, len(exprs))
		changed := false
		var resolveErr error
		for i, e := range exprs {
			if resolveErr != nil {
				break
			}
			ne := expr.TransformUp(e, func(sub expr.Expr) expr.Expr {
				if resolveErr != nil {
					return sub
				}
				unresolved, isUnresolved := sub.(*expr.UnresolvedAttribute)
				if !isUnresolved {
					return sub
				}
				match, err := resolveOne(unresolved, candidates)
				if err != nil {
					resolveErr = err
					return sub
				}
				if match == nil {
					return sub
				}
				return match
			})
			newExprs[i] = ne
			if ne != e {
				changed = true
			}
		}
		if resolveErr != nil {
			return nil, resolveErr
		}
		if !changed {
			return n, nil
		}
		return holder.WithExprs(newExprs), nil
	})
}

// childOutputs gathers the output schema every child of n contributes,
// used as the candidate pool for binding an UnresolvedAttribute.
func childOutputs(n plan.LogicalPlan) []*expr.AttributeRef {
	var out []*expr.AttributeRef
	for _, c := range n.Children() {
		out = append(out, c.Output()...)
	}
	return out
}

// resolveOne matches u against candidates by case-folded name. A nil,
// nil return means "no match yet, leave unresolved for a later pass"
// (the other operand's relation may not be a direct child yet in a
// deeply nested plan); a non-nil error means the match is genuinely
// ambiguous given the current candidate pool.
func resolveOne(u *expr.UnresolvedAttribute, candidates []*expr.AttributeRef) (*expr.AttributeRef, error) {
	name := foldCase.String(u.Name())

	var matches []*expr.AttributeRef
	for _, c := range candidates {
		if foldCase.String(c.Name) == name {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, compileerr.NewResolutionFailure(
			fmt.Sprintf("ambiguous reference %q matches %d candidates", u, len(matches)))
	}
}
