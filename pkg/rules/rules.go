// Package rules implements the generic fixed-point rule executor
// shared by the Analyzer and the Optimizer: both are a sequence of
// RuleBatch values applied over a plan.LogicalPlan until either a
// batch's strategy is satisfied or the plan stops changing.
package rules

import (
	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/trace"
)

// Rule rewrites a plan tree, returning the (possibly unchanged) result
// or an error that aborts the whole Execute call immediately — the
// spec's "resolution and type errors abort compilation immediately;
// they are not recovered locally."
type Rule interface {
	Name() string
	Apply(p plan.LogicalPlan) (plan.LogicalPlan, error)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc struct {
	RuleName string
	Fn       func(plan.LogicalPlan) (plan.LogicalPlan, error)
}

func (f RuleFunc) Name() string { return f.RuleName }

func (f RuleFunc) Apply(p plan.LogicalPlan) (plan.LogicalPlan, error) { return f.Fn(p) }

// Strategy controls how many times a RuleBatch's rules are applied
// before the executor moves to the next batch.
type Strategy struct {
	// MaxIterations bounds the fixed-point loop. Zero means Once
	// (apply every rule in the batch exactly one pass). A negative
	// value means Unlimited, capped defensively at safetyCeiling.
	MaxIterations int
}

// Once applies every rule in a batch exactly one pass, with no
// convergence check.
func Once() Strategy { return Strategy{MaxIterations: 1} }

// FixedPoint iterates the batch until the plan stops changing or n
// passes have run, whichever comes first.
func FixedPoint(n int) Strategy { return Strategy{MaxIterations: n} }

// Unlimited iterates until convergence, guarded by safetyCeiling so a
// non-terminating rule set raises InternalError instead of looping
// forever.
func Unlimited() Strategy { return Strategy{MaxIterations: -1} }

// safetyCeiling bounds Unlimited() batches. Mirrors the teacher's own
// defensive maxIterations cap in pkg/optimizer's RuleSet.Apply, scaled
// up since this executor also covers the Analyzer's deeper resolution
// chains.
const safetyCeiling = 100

// RuleBatch groups rules that run together under one Strategy, the
// granularity at which the Analyzer and Optimizer each split their
// rule set into named phases ("Resolution", "Operator Optimizations",
// ...).
type RuleBatch struct {
	Name     string
	Strategy Strategy
	Rules    []Rule
}

// RulesExecutor runs an ordered list of RuleBatch values over a plan,
// optionally emitting a trace.Tracer entry for every rule application
// that changes the plan.
type RulesExecutor struct {
	Batches []RuleBatch
	Tracer  trace.Tracer
}

// NewRulesExecutor builds an executor over the given batches. A nil
// Tracer may be supplied via SetTracer later; Execute tolerates a nil
// Tracer by skipping trace emission.
func NewRulesExecutor(batches []RuleBatch) *RulesExecutor {
	return &RulesExecutor{Batches: batches}
}

// SetTracer attaches t, used to log the before/after state of every
// plan-changing rule application.
func (e *RulesExecutor) SetTracer(t trace.Tracer) {
	e.Tracer = t
}

// Execute runs every batch in order over p and returns the final
// plan. Any rule error aborts immediately and is returned as-is, per
// the spec's propagation rule.
func (e *RulesExecutor) Execute(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	current := p
	for _, batch := range e.Batches {
		next, err := e.runBatch(batch, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func (e *RulesExecutor) runBatch(batch RuleBatch, p plan.LogicalPlan) (plan.LogicalPlan, error) {
	max := batch.Strategy.MaxIterations
	unlimited := max < 0
	if unlimited {
		max = safetyCeiling
	}
	if max == 0 {
		max = 1
	}

	current := p
	for iteration := 0; iteration < max; iteration++ {
		before := current
		for _, rule := range batch.Rules {
			next, err := rule.Apply(current)
			if err != nil {
				return nil, err
			}
			if !samePlan(next, current) {
				e.trace(batch.Name, rule.Name(), current, next)
				current = next
			}
		}
		if samePlan(current, before) {
			return current, nil
		}
	}
	if unlimited {
		return nil, compileerr.NewInternalError(
			"batch \"" + batch.Name + "\" did not converge within the safety ceiling")
	}
	return current, nil
}

func (e *RulesExecutor) trace(batchName, ruleName string, before, after plan.LogicalPlan) {
	if e.Tracer == nil {
		return
	}
	e.Tracer.RuleApplied(batchName, ruleName, plan.PrettyTree(before), plan.PrettyTree(after))
}

// samePlan reports whether a and b are the same plan: first by
// reference identity (the fast path most rules that return their
// input unchanged hit), then by rendered-tree structural equality as
// a fallback for rules that rebuild an equivalent tree from scratch.
func samePlan(a, b plan.LogicalPlan) bool {
	if a == b {
		return true
	}
	return plan.PrettyTree(a) == plan.PrettyTree(b)
}
