package analyzer

import (
	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// ResolveRelationsRule replaces every UnresolvedRelation with the
// Relation its Catalog lookup returns, failing with TableNotFound when
// the lookup misses.
type ResolveRelationsRule struct {
	Catalog Catalog
}

func (ResolveRelationsRule) Name() string { return "ResolveRelations" }

func (r ResolveRelationsRule) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return transformUpErr(p, func(n plan.LogicalPlan) (plan.LogicalPlan, error) {
		unresolved, ok := n.(*plan.UnresolvedRelation)
		if !ok {
			return n, nil
		}
		rel, err := r.Catalog.LookupRelation(unresolved.Name)
		if err != nil {
			return nil, compileerr.NewTableNotFound(unresolved.Name)
		}
		return rel, nil
	})
}
