package plan

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/expr"
)

// JoinType names the kind of join an algorithm is free to pick a
// physical strategy for.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	FullJoin  JoinType = "FULL"
	CrossJoin JoinType = "CROSS"
)

// Join combines Left and Right row-wise according to Type, keeping
// only pairs for which Condition is TRUE (CrossJoin ignores Condition,
// which must be nil).
type Join struct {
	Left, Right LogicalPlan
	Type        JoinType
	Condition   expr.Expr // nil for CrossJoin
}

func NewJoin(left, right LogicalPlan, joinType JoinType, condition expr.Expr) *Join {
	return &Join{Left: left, Right: right, Type: joinType, Condition: condition}
}

func (j *Join) Children() []LogicalPlan { return []LogicalPlan{j.Left, j.Right} }

func (j *Join) WithChildren(c []LogicalPlan) LogicalPlan {
	cp := *j
	cp.Left, cp.Right = c[0], c[1]
	return &cp
}

func (j *Join) Exprs() []expr.Expr {
	if j.Condition == nil {
		return nil
	}
	return []expr.Expr{j.Condition}
}

func (j *Join) WithExprs(exprs []expr.Expr) LogicalPlan {
	cp := *j
	if len(exprs) > 0 {
		cp.Condition = exprs[0]
	}
	return &cp
}

// Output concatenates the left and right child schemas, left first —
// the order any positional disambiguation (self-joins included) relies
// on.
func (j *Join) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, 0, len(j.Left.Output())+len(j.Right.Output()))
	out = append(out, j.Left.Output()...)
	out = append(out, j.Right.Output()...)
	return out
}

func (j *Join) Resolved() bool {
	if j.Condition != nil && !j.Condition.Resolved() {
		return false
	}
	return true
}

func (j *Join) String() string {
	if j.Condition == nil {
		return fmt.Sprintf("Join[%s]", j.Type)
	}
	return fmt.Sprintf("Join[%s, %s]", j.Type, j.Condition)
}
