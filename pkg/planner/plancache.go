// Package planner caches optimized logical plans keyed by a fingerprint
// of the SQL that produced them, so repeated submissions of the same
// statement skip re-running Analyze+Optimize. Grounded on the teacher's
// pkg/optimizer/plan_cache.go ("PlanCache implements a DQ-inspired plan
// cache... map SQL fingerprint -> optimized execution plan").
package planner

import "github.com/sqlplan/logicplan/pkg/plan"

// PlanCache maps a SQL fingerprint to its optimized plan. Two
// implementations satisfy it — MemoryCache and BadgerCache — so a
// caller can swap the backend without changing how it calls the cache.
type PlanCache interface {
	Get(fingerprint uint64) (plan.LogicalPlan, bool)
	Put(fingerprint uint64, p plan.LogicalPlan)
	Invalidate()
	Stats() (hits, misses int64)
}
