package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

func idRelation(name string, cols ...string) *plan.Relation {
	schema := make([]*expr.AttributeRef, len(cols))
	for i, c := range cols {
		schema[i] = expr.NewAttributeRef(expr.NewAttrID(), c, types.Int64, false)
	}
	return plan.NewRelation(name, schema)
}

func TestUnresolvedRelationNotResolved(t *testing.T) {
	assert.False(t, plan.NewUnresolvedRelation("t").Resolved())
}

func TestRelationIsResolvedWithOutput(t *testing.T) {
	r := idRelation("t", "id", "name")
	assert.True(t, r.Resolved())
	assert.Len(t, r.Output(), 2)
}

func TestProjectOutputTracksAliasAndPassthrough(t *testing.T) {
	r := idRelation("t", "id", "name")
	idRef := r.Output()[0]
	alias := expr.NewAlias(expr.NewLiteral(int64(1), types.Int64), "one")

	p := plan.NewProject([]expr.Expr{idRef, alias}, r)
	out := p.Output()
	require.Len(t, out, 2)
	assert.Equal(t, idRef.ID, out[0].ID)
	assert.Equal(t, alias.ID, out[1].ID)
	assert.Equal(t, "one", out[1].Name)
}

func TestProjectUnresolvedWithStar(t *testing.T) {
	r := idRelation("t", "id")
	p := plan.NewProject([]expr.Expr{&expr.Star{}}, r)
	assert.False(t, p.Resolved())
}

func TestIsResolvedFalseWhenAnyDescendantUnresolved(t *testing.T) {
	u := plan.NewUnresolvedRelation("t")
	f := plan.NewFilter(expr.NewLiteral(true, types.Bool), u)
	assert.False(t, plan.IsResolved(f))
}

func TestIsResolvedTrueForFullyResolvedTree(t *testing.T) {
	r := idRelation("t", "id")
	f := plan.NewFilter(expr.NewComparison(expr.Gt, r.Output()[0], expr.NewLiteral(int64(0), types.Int64)), r)
	assert.True(t, plan.IsResolved(f))
}

func TestJoinOutputConcatenatesLeftThenRight(t *testing.T) {
	left := idRelation("a", "x")
	right := idRelation("b", "y")
	j := plan.NewJoin(left, right, plan.InnerJoin, expr.NewComparison(expr.Eq, left.Output()[0], right.Output()[0]))
	out := j.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "x", out[0].Name)
	assert.Equal(t, "y", out[1].Name)
}

func TestTransformDownRewritesRelationName(t *testing.T) {
	r := idRelation("t", "id")
	f := plan.NewFilter(expr.NewLiteral(true, types.Bool), r)

	out := plan.TransformDown(f, func(n plan.LogicalPlan) plan.LogicalPlan {
		if rel, ok := n.(*plan.Relation); ok {
			cp := *rel
			cp.Name = "renamed"
			return &cp
		}
		return n
	})

	filter := out.(*plan.Filter)
	assert.Equal(t, "renamed", filter.Child.(*plan.Relation).Name)
}

func TestTransformExpressionsAppliesToHoldersOnly(t *testing.T) {
	r := idRelation("t", "id")
	cond := expr.NewComparison(expr.Gt, r.Output()[0], expr.NewLiteral(int64(0), types.Int64))
	f := plan.NewFilter(cond, r)

	out := plan.TransformExpressions(f, func(e expr.Expr) expr.Expr {
		if lit, ok := e.(*expr.Literal); ok {
			return expr.NewLiteral(int64(100), lit.Typ)
		}
		return e
	})

	filter := out.(*plan.Filter)
	cmp := filter.Condition.(*expr.Comparison)
	assert.Equal(t, int64(100), cmp.Right().(*expr.Literal).Value)
}

func TestPrettyTreeIndentsChildren(t *testing.T) {
	r := idRelation("t", "id")
	f := plan.NewFilter(expr.NewLiteral(true, types.Bool), r)
	out := plan.PrettyTree(f)
	assert.Contains(t, out, "Filter[")
	assert.Contains(t, out, "  Relation[t]")
}
