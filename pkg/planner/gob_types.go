package planner

import (
	"encoding/gob"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// init registers every concrete LogicalPlan/Expr node, plus the scalar
// types that can appear in a Literal's Value or a LocalRelation's Row,
// so encoding/gob can round-trip a plan tree stored behind a
// plan.LogicalPlan/expr.Expr interface field.
func init() {
	gob.Register(&plan.Relation{})
	gob.Register(&plan.LocalRelation{})
	gob.Register(&plan.UnresolvedRelation{})
	gob.Register(&plan.Filter{})
	gob.Register(&plan.Project{})
	gob.Register(&plan.Join{})
	gob.Register(&plan.Limit{})
	gob.Register(&plan.SubqueryAlias{})

	gob.Register(&expr.AttributeRef{})
	gob.Register(&expr.UnresolvedAttribute{})
	gob.Register(&expr.Star{})
	gob.Register(&expr.Literal{})
	gob.Register(&expr.Alias{})
	gob.Register(&expr.Cast{})
	gob.Register(&expr.Arithmetic{})
	gob.Register(&expr.Comparison{})
	gob.Register(&expr.And{})
	gob.Register(&expr.Or{})
	gob.Register(&expr.Not{})
	gob.Register(&expr.If{})
	gob.Register(&expr.Coalesce{})
	gob.Register(&expr.IsNull{})
	gob.Register(&expr.IsNotNull{})

	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register("")
	gob.Register(false)
}
