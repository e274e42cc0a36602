package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/analyzer"
	"github.com/sqlplan/logicplan/pkg/config"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

type stubCatalog struct {
	relations map[string]*plan.Relation
}

func newStubCatalog() *stubCatalog { return &stubCatalog{relations: map[string]*plan.Relation{}} }

func (c *stubCatalog) register(name string, cols ...string) *plan.Relation {
	schema := make([]*expr.AttributeRef, len(cols))
	for i, col := range cols {
		schema[i] = expr.NewAttributeRef(expr.NewAttrID(), col, types.Int64, false)
	}
	rel := plan.NewRelation(name, schema)
	c.relations[name] = rel
	return rel
}

func (c *stubCatalog) LookupRelation(name string) (*plan.Relation, error) {
	rel, ok := c.relations[name]
	if !ok {
		return nil, assert.AnError
	}
	// Each lookup returns a fresh schema so two references to the same
	// table (self-joins) get independent identities, the way a real
	// Catalog backed by a live connection would.
	schema := make([]*expr.AttributeRef, len(rel.Schema))
	for i, c := range rel.Schema {
		schema[i] = expr.NewAttributeRef(expr.NewAttrID(), c.Name, c.Typ, c.Nullable())
	}
	return plan.NewRelation(rel.Name, schema), nil
}

func defaultAnalyzer(cat analyzer.Catalog) *analyzer.Analyzer {
	return analyzer.New(cat, config.AnalyzerConfig{MaxIterations: 50})
}

func TestResolvesBareTableAndStar(t *testing.T) {
	cat := newStubCatalog()
	cat.register("orders", "id", "amount")

	in := plan.NewProject([]expr.Expr{&expr.Star{}}, plan.NewUnresolvedRelation("orders"))

	out, err := defaultAnalyzer(cat).Analyze(in)
	require.NoError(t, err)
	assert.True(t, plan.IsResolved(out))

	proj := out.(*plan.Project)
	assert.Len(t, proj.Output(), 2)
}

func TestResolvesQualifiedColumnReference(t *testing.T) {
	cat := newStubCatalog()
	cat.register("orders", "id", "amount")

	in := plan.NewProject(
		[]expr.Expr{expr.NewUnresolvedAttribute("orders", "amount")},
		plan.NewUnresolvedRelation("orders"),
	)

	out, err := defaultAnalyzer(cat).Analyze(in)
	require.NoError(t, err)
	proj := out.(*plan.Project)
	ref, ok := proj.Projections[0].(*expr.AttributeRef)
	require.True(t, ok)
	assert.Equal(t, "amount", ref.Name)
}

func TestUnknownTableIsTableNotFound(t *testing.T) {
	cat := newStubCatalog()
	in := plan.NewProject([]expr.Expr{&expr.Star{}}, plan.NewUnresolvedRelation("missing"))

	_, err := defaultAnalyzer(cat).Analyze(in)
	assert.Error(t, err)
}

func TestSelfJoinIsRejectedAsUnsupported(t *testing.T) {
	// S6: the exact same resolved relation on both sides of a Join
	// (as opposed to two independent catalog lookups of the same
	// table name) is the self-join shape ResolveSelfJoinsRule rejects.
	r := plan.NewRelation("t", []*expr.AttributeRef{
		expr.NewAttributeRef(expr.NewAttrID(), "id", types.Int64, false),
	})
	join := plan.NewJoin(r, r, plan.InnerJoin, nil)

	cat := newStubCatalog()
	_, err := defaultAnalyzer(cat).Analyze(join)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Self-join is not supported yet")
}

func TestImplicitCastInsertedForMixedTypeComparison(t *testing.T) {
	cat := newStubCatalog()
	cat.register("t", "a")

	in := plan.NewFilter(
		expr.NewComparison(expr.Gt, expr.NewUnresolvedAttribute("a"), expr.NewLiteral(1.5, types.Float64)),
		plan.NewUnresolvedRelation("t"),
	)

	out, err := defaultAnalyzer(cat).Analyze(in)
	require.NoError(t, err)
	filter := out.(*plan.Filter)
	cmp := filter.Condition.(*expr.Comparison)
	_, isCast := cmp.Left().(*expr.Cast)
	assert.True(t, isCast)
}
