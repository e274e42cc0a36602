package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/frontend"
	"github.com/sqlplan/logicplan/pkg/plan"
)

func TestParseSimpleSelectStar(t *testing.T) {
	out, err := frontend.New().Parse("SELECT * FROM orders")
	require.NoError(t, err)

	proj, ok := out.(*plan.Project)
	require.True(t, ok)
	require.Len(t, proj.Projections, 1)
	_, isStar := proj.Projections[0].(*expr.Star)
	assert.True(t, isStar)

	rel, ok := proj.Child.(*plan.UnresolvedRelation)
	require.True(t, ok)
	assert.Equal(t, "orders", rel.Name)
}

func TestParseSelectWithWhereAndLimit(t *testing.T) {
	out, err := frontend.New().Parse("SELECT id, amount FROM orders WHERE amount > 10 LIMIT 5")
	require.NoError(t, err)

	lim, ok := out.(*plan.Limit)
	require.True(t, ok)
	assert.Equal(t, int64(5), lim.N)

	proj, ok := lim.Child.(*plan.Project)
	require.True(t, ok)
	require.Len(t, proj.Projections, 2)

	filter, ok := proj.Child.(*plan.Filter)
	require.True(t, ok)
	cmp, ok := filter.Condition.(*expr.Comparison)
	require.True(t, ok)
	assert.Equal(t, expr.Gt, cmp.Op)
}

func TestParseQualifiedColumnAndAlias(t *testing.T) {
	out, err := frontend.New().Parse("SELECT o.id AS order_id FROM orders AS o")
	require.NoError(t, err)

	proj, ok := out.(*plan.Project)
	require.True(t, ok)
	alias, ok := proj.Projections[0].(*expr.Alias)
	require.True(t, ok)
	assert.Equal(t, "order_id", alias.Name)

	unresolved, ok := alias.Child.(*expr.UnresolvedAttribute)
	require.True(t, ok)
	qualifier, hasQualifier := unresolved.Qualifier()
	assert.True(t, hasQualifier)
	assert.Equal(t, "o", qualifier)

	sub, ok := proj.Child.(*plan.SubqueryAlias)
	require.True(t, ok)
	assert.Equal(t, "o", sub.Alias)
}

func TestParseRejectsJoin(t *testing.T) {
	_, err := frontend.New().Parse("SELECT * FROM a JOIN b ON a.id = b.id")
	assert.Error(t, err)
}

func TestParseRejectsNonSelect(t *testing.T) {
	_, err := frontend.New().Parse("DELETE FROM orders")
	assert.Error(t, err)
}
