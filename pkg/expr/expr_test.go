package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/types"
)

func TestTransformDownVisitsEveryNode(t *testing.T) {
	lit := expr.NewLiteral(int64(1), types.Int64)
	cmp := expr.NewComparison(expr.Eq, lit, expr.NewLiteral(int64(2), types.Int64))

	visited := 0
	expr.TransformDown(cmp, func(e expr.Expr) expr.Expr {
		visited++
		return e
	})
	assert.Equal(t, 3, visited) // comparison, lit, lit
}

func TestTransformUpRebuildsBottomUp(t *testing.T) {
	left := expr.NewLiteral(int64(1), types.Int64)
	right := expr.NewLiteral(int64(2), types.Int64)
	add := expr.NewArithmetic(expr.Add, left, right)

	result := expr.TransformUp(add, func(e expr.Expr) expr.Expr {
		if lit, ok := e.(*expr.Literal); ok && lit.Value == int64(1) {
			return expr.NewLiteral(int64(99), types.Int64)
		}
		return e
	})

	arith, ok := result.(*expr.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, int64(99), arith.Left().(*expr.Literal).Value)
}

func TestSubstituteRewritesByAttrID(t *testing.T) {
	id := expr.NewAttrID()
	ref := expr.NewAttributeRef(id, "x", types.Int64, false)
	expression := expr.NewArithmetic(expr.Add, ref, expr.NewLiteral(int64(1), types.Int64))

	replacement := expr.NewLiteral(int64(42), types.Int64)
	out := expr.Substitute(expression, map[expr.AttrID]expr.Expr{id: replacement})

	arith := out.(*expr.Arithmetic)
	assert.Equal(t, int64(42), arith.Left().(*expr.Literal).Value)
}

func TestReferencesCollectsAttrIDs(t *testing.T) {
	id1, id2 := expr.NewAttrID(), expr.NewAttrID()
	ref1 := expr.NewAttributeRef(id1, "a", types.Int64, false)
	ref2 := expr.NewAttributeRef(id2, "b", types.Int64, false)
	e := expr.NewAnd(
		expr.NewComparison(expr.Eq, ref1, expr.NewLiteral(int64(1), types.Int64)),
		expr.NewComparison(expr.Gt, ref2, expr.NewLiteral(int64(0), types.Int64)),
	)

	set := expr.References(e)
	assert.True(t, set.Contains(id1))
	assert.True(t, set.Contains(id2))
	assert.Len(t, set, 2)
}

func TestStrictlyTypedFalseForUnresolved(t *testing.T) {
	unresolved := expr.NewUnresolvedAttribute("t", "x")
	assert.False(t, expr.StrictlyTyped(unresolved))

	ref := expr.NewAttributeRef(expr.NewAttrID(), "x", types.Int64, false)
	assert.True(t, expr.StrictlyTyped(ref))
}

func TestApplyImplicitCastsWidensIntToFloat(t *testing.T) {
	intRef := expr.NewAttributeRef(expr.NewAttrID(), "i", types.Int64, false)
	floatLit := expr.NewLiteral(1.5, types.Float64)
	add := expr.NewArithmetic(expr.Add, intRef, floatLit)

	out := expr.ApplyImplicitCasts(add)
	arith := out.(*expr.Arithmetic)

	cast, ok := arith.Left().(*expr.Cast)
	require.True(t, ok, "expected left operand to be cast to DOUBLE")
	assert.Equal(t, types.Float64, cast.Type())
	assert.Equal(t, floatLit, arith.Right())
}

func TestApplyImplicitCastsNoOpWhenAlreadyCommon(t *testing.T) {
	a := expr.NewAttributeRef(expr.NewAttrID(), "a", types.Int64, false)
	b := expr.NewAttributeRef(expr.NewAttrID(), "b", types.Int64, false)
	add := expr.NewArithmetic(expr.Add, a, b)

	out := expr.ApplyImplicitCasts(add)
	arith := out.(*expr.Arithmetic)
	_, leftIsCast := arith.Left().(*expr.Cast)
	_, rightIsCast := arith.Right().(*expr.Cast)
	assert.False(t, leftIsCast)
	assert.False(t, rightIsCast)
}

func TestAndOrAreNotBinaryOperator(t *testing.T) {
	var e expr.Expr = expr.NewAnd(expr.NewLiteral(true, types.Bool), expr.NewLiteral(false, types.Bool))
	_, ok := e.(expr.BinaryOperator)
	assert.False(t, ok, "And must not satisfy BinaryOperator so NullPropagation skips it")

	e = expr.NewOr(expr.NewLiteral(true, types.Bool), expr.NewLiteral(false, types.Bool))
	_, ok = e.(expr.BinaryOperator)
	assert.False(t, ok, "Or must not satisfy BinaryOperator so NullPropagation skips it")
}

func TestComparisonIsBinaryOperator(t *testing.T) {
	var e expr.Expr = expr.NewComparison(expr.Eq, expr.NewLiteral(int64(1), types.Int64), expr.NewLiteral(int64(1), types.Int64))
	_, ok := e.(expr.BinaryOperator)
	assert.True(t, ok)
}

func TestAliasMintsFreshAttrID(t *testing.T) {
	lit := expr.NewLiteral(int64(1), types.Int64)
	a1 := expr.NewAlias(lit, "x")
	a2 := expr.NewAlias(lit, "x")
	assert.NotEqual(t, a1.ID, a2.ID)
}
