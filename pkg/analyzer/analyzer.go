// Package analyzer implements the Analyzer: the rule batch that
// raises an UnresolvedRelation/UnresolvedAttribute-bearing plan from a
// frontend up through the Unresolved ⊑ Resolved ⊑ StrictlyTyped
// lattice spec.md describes, by repeatedly applying a fixed set of
// resolution rules until the plan stops changing.
package analyzer

import (
	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/config"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/rules"
	"github.com/sqlplan/logicplan/pkg/trace"
)

// Catalog is the Analyzer's sole external collaborator: given a table
// name, it returns the resolved Relation (schema, attribute ids) a
// concrete storage engine would back it with.
type Catalog interface {
	LookupRelation(name string) (*plan.Relation, error)
}

// Analyzer resolves a plan tree against a Catalog.
type Analyzer struct {
	exec *rules.RulesExecutor
}

// New builds an Analyzer wired against catalog, with its resolution
// batch capped at cfg.Analyzer.MaxIterations passes.
func New(catalog Catalog, cfg config.AnalyzerConfig) *Analyzer {
	batch := rules.RuleBatch{
		Name:     "Resolution",
		Strategy: rules.FixedPoint(cfg.MaxIterations),
		Rules: []rules.Rule{
			ResolveRelationsRule{Catalog: catalog},
			ResolveSelfJoinsRule{},
			ExpandStarsRule{},
			ResolveReferencesRule{},
			ApplyImplicitCastsRule{},
			EliminateSubqueriesRule{},
		},
	}
	return &Analyzer{exec: rules.NewRulesExecutor([]rules.RuleBatch{batch})}
}

// SetTracer attaches t to the underlying rules executor.
func (a *Analyzer) SetTracer(t trace.Tracer) {
	a.exec.SetTracer(t)
}

// Analyze runs the resolution batch over p and returns the resolved
// plan, or a *compileerr.ResolutionFailure if the batch converges (or
// exhausts its iteration cap) while the plan still contains an
// unresolved node.
func (a *Analyzer) Analyze(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	out, err := a.exec.Execute(p)
	if err != nil {
		return nil, err
	}
	if !plan.IsResolved(out) {
		return nil, compileerr.NewResolutionFailure(plan.PrettyTree(out))
	}
	return out, nil
}
