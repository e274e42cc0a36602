package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/config"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/optimizer"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

func defaultOptimizer() *optimizer.Optimizer {
	return optimizer.New(config.OptimizerConfig{Enabled: true, MaxIterations: 50, CNFMaxClauses: 16})
}

func col(name string, nullable bool) *expr.AttributeRef {
	return expr.NewAttributeRef(expr.NewAttrID(), name, types.Int64, nullable)
}

func relationWith(name string, cols ...*expr.AttributeRef) *plan.Relation {
	return plan.NewRelation(name, cols)
}

// S1: Filter(R, (1 + 2) > 2) -> R.
func TestFoldConstantsCollapsesTautologicalFilter(t *testing.T) {
	r := relationWith("r", col("id", false))
	sum := expr.NewArithmetic(expr.Add, expr.NewLiteral(int64(1), types.Int64), expr.NewLiteral(int64(2), types.Int64))
	cond := expr.NewComparison(expr.Gt, sum, expr.NewLiteral(int64(2), types.Int64))
	in := plan.NewFilter(cond, r)

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	assert.Same(t, plan.LogicalPlan(r), out)
}

// S2: Filter(Join(A, B, Inner, None), a1=1 AND b1=2 AND a1=b1)
// -> Join(Filter(A, a1=1), Filter(B, b1=2), Inner, Some(a1=b1)).
func TestPushFiltersThroughJoinSplitsConjuncts(t *testing.T) {
	a1 := col("a1", false)
	b1 := col("b1", false)
	a := relationWith("a", a1)
	b := relationWith("b", b1)
	join := plan.NewJoin(a, b, plan.InnerJoin, nil)

	cond := expr.NewAnd(
		expr.NewAnd(
			expr.NewComparison(expr.Eq, a1, expr.NewLiteral(int64(1), types.Int64)),
			expr.NewComparison(expr.Eq, b1, expr.NewLiteral(int64(2), types.Int64)),
		),
		expr.NewComparison(expr.Eq, a1, b1),
	)
	in := plan.NewFilter(cond, join)

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)

	outJoin, ok := out.(*plan.Join)
	require.True(t, ok, "expected a Join at the root, got %T", out)

	leftFilter, ok := outJoin.Left.(*plan.Filter)
	require.True(t, ok, "expected left side pushed into a Filter, got %T", outJoin.Left)
	assert.Same(t, plan.LogicalPlan(a), leftFilter.Child)

	rightFilter, ok := outJoin.Right.(*plan.Filter)
	require.True(t, ok, "expected right side pushed into a Filter, got %T", outJoin.Right)
	assert.Same(t, plan.LogicalPlan(b), rightFilter.Child)

	require.NotNil(t, outJoin.Condition)
	cmp, ok := outJoin.Condition.(*expr.Comparison)
	require.True(t, ok, "expected the join condition to retain a1 = b1, got %T", outJoin.Condition)
	assert.Equal(t, expr.Eq, cmp.Op)
}

// S3: Project(R, R.output) -> R.
func TestReduceProjectsEliminatesIdentityProjection(t *testing.T) {
	r := relationWith("r", col("id", false), col("amount", true))
	projections := make([]expr.Expr, len(r.Output()))
	for i, a := range r.Output() {
		projections[i] = a
	}
	in := plan.NewProject(projections, r)

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	assert.Same(t, plan.LogicalPlan(r), out)
}

// S4: Limit(Limit(R, 10), 5) -> Limit(R, 5).
func TestReduceLimitsKeepsTighterBound(t *testing.T) {
	r := relationWith("r", col("id", false))
	in := plan.NewLimit(5, plan.NewLimit(10, r))

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	lim, ok := out.(*plan.Limit)
	require.True(t, ok)
	assert.Equal(t, int64(5), lim.N)
	assert.Same(t, plan.LogicalPlan(r), lim.Child)
}

// S5: IsNull(c) where c is declared non-nullable -> Literal(False, Boolean).
func TestNullPropagationFoldsIsNullOverNonNullableColumn(t *testing.T) {
	c := col("id", false)
	r := relationWith("r", c)
	in := plan.NewFilter(expr.NewIsNull(c), r)

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	// the condition folds to constant False, so FoldConstantFilters
	// replaces the whole Filter with an empty LocalRelation.
	local, ok := out.(*plan.LocalRelation)
	require.True(t, ok, "expected LocalRelation, got %T", out)
	assert.Equal(t, r.Output()[0].Name, local.Schema[0].Name)
	assert.Empty(t, local.Rows)
}

func TestOptimizeIsNoOpWhenDisabled(t *testing.T) {
	r := relationWith("r", col("id", false))
	opt := optimizer.New(config.OptimizerConfig{Enabled: false})
	out, err := opt.Optimize(r)
	require.NoError(t, err)
	assert.Same(t, plan.LogicalPlan(r), out)
}

func TestPushProjectsThroughLimits(t *testing.T) {
	// a two-column relation projected down to one: the projection isn't
	// an identity over the Limit's output, so ReduceProjects can't
	// eliminate it and the push-down rule is actually exercised.
	r := relationWith("r", col("id", false), col("amount", true))
	in := plan.NewProject([]expr.Expr{r.Output()[0]}, plan.NewLimit(5, r))

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	lim, ok := out.(*plan.Limit)
	require.True(t, ok, "expected Limit at the root after push-down, got %T", out)
	_, isProject := lim.Child.(*plan.Project)
	assert.True(t, isProject)
}

func TestReduceCastsCollapsesNestedWideningCasts(t *testing.T) {
	// a column (not a literal) carries the casts so FoldConstants can't
	// fold them away; only ReduceCasts' nested-cast collapse applies.
	c := col("amount", false)
	inner := expr.NewCast(c, types.Float64)
	outer := expr.NewCast(inner, types.Float64)
	r := relationWith("r", c)
	in := plan.NewProject([]expr.Expr{expr.NewAlias(outer, "x")}, r)

	out, err := defaultOptimizer().Optimize(in)
	require.NoError(t, err)
	proj := out.(*plan.Project)
	cast, ok := unwrapAliasValue(proj.Projections[0]).(*expr.Cast)
	require.True(t, ok, "expected a single collapsed Cast, got %T", unwrapAliasValue(proj.Projections[0]))
	assert.Equal(t, types.Float64, cast.Typ)
	_, nestedCast := cast.Child.(*expr.Cast)
	assert.False(t, nestedCast, "nested cast should have been collapsed")
}

func unwrapAliasValue(e expr.Expr) expr.Expr {
	if a, ok := e.(*expr.Alias); ok {
		return a.Child
	}
	return e
}
