package optimizer

import (
	"github.com/sqlplan/logicplan/pkg/config"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/rules"
	"github.com/sqlplan/logicplan/pkg/trace"
)

// Optimizer rewrites a resolved, strictly typed plan into a
// semantically equivalent one, applying its rule set to a fixed point.
// Order matters: constant folding runs before predicate simplification
// so branches containing folded true/false collapse, and CNF
// conversion precedes the filter push-down rules so a conjunction can
// be split and its conjuncts pushed independently.
type Optimizer struct {
	exec    *rules.RulesExecutor
	enabled bool
}

// New builds an Optimizer per cfg. If cfg.Enabled is false, Optimize
// returns its input unchanged — used to compare Analyzer-only output
// against optimized output in tests, and to let a caller disable
// optimization entirely.
func New(cfg config.OptimizerConfig) *Optimizer {
	batch := rules.RuleBatch{
		Name:     "Operator Optimizations",
		Strategy: rules.FixedPoint(cfg.MaxIterations),
		Rules: []rules.Rule{
			FoldConstantsRule{},
			FoldLogicalPredicatesRule{},
			NullPropagationRule{},
			CNFConversionRule{MaxClauses: cfg.CNFMaxClauses},
			EliminateCommonPredicatesRule{},
			ReduceNegationsRule{},
			ReduceCastsRule{},
			ReduceAliasesRule{},
			ReduceProjectsRule{},
			ReduceFiltersRule{},
			FoldConstantFiltersRule{},
			PushFiltersThroughProjectsRule{},
			PushFiltersThroughJoinsRule{MaxClauses: cfg.CNFMaxClauses},
			PushProjectsThroughLimitsRule{},
			ReduceLimitsRule{},
		},
	}
	return &Optimizer{
		exec:    rules.NewRulesExecutor([]rules.RuleBatch{batch}),
		enabled: cfg.Enabled,
	}
}

// SetTracer attaches t to the underlying rules executor.
func (o *Optimizer) SetTracer(t trace.Tracer) {
	o.exec.SetTracer(t)
}

// Optimize runs the Operator Optimizations batch over p.
func (o *Optimizer) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	if !o.enabled {
		return p, nil
	}
	return o.exec.Execute(p)
}
