// Package frontend bridges the teacher's own SQL parser dependency,
// github.com/pingcap/tidb/pkg/parser, into an UnresolvedRelation/
// UnresolvedAttribute-bearing plan.LogicalPlan — the exact shape the
// Analyzer expects as input. Grounded on pkg/parser/adapter.go: wrap
// parser.New(), call Parse, walk the ast.SelectStmt fields (From,
// Where, Fields, Limit) and translate them into unresolved plan and
// expression nodes.
//
// Only a pragmatic subset of SELECT ... FROM ... WHERE ... LIMIT ...
// over a single table, with binary/unary expressions, is translated —
// this is a convenience frontend for exercising the core end to end,
// not a full SQL grammar; anything it cannot translate returns a
// *compileerr.Unsupported rather than guessing.
package frontend

import (
	"fmt"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/opcode"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// Adapter parses SQL text into an unresolved logical plan.
type Adapter struct {
	parser *parser.Parser
}

// New builds an Adapter wrapping a fresh tidb SQL parser.
func New() *Adapter {
	return &Adapter{parser: parser.New()}
}

// Parse translates sql's first statement into an unresolved
// plan.LogicalPlan ready for an Analyzer. Only SELECT is supported.
func (a *Adapter) Parse(sql string) (plan.LogicalPlan, error) {
	stmtNodes, _, err := a.parser.Parse(sql, "", "")
	if err != nil {
		return nil, fmt.Errorf("frontend: parse: %w", err)
	}
	if len(stmtNodes) == 0 {
		return nil, compileerr.NewUnsupported("empty statement")
	}

	selectStmt, ok := stmtNodes[0].(*ast.SelectStmt)
	if !ok {
		return nil, compileerr.NewUnsupported(fmt.Sprintf("statement type %T", stmtNodes[0]))
	}
	return a.convertSelect(selectStmt)
}

func (a *Adapter) convertSelect(stmt *ast.SelectStmt) (plan.LogicalPlan, error) {
	if stmt.From == nil || stmt.From.TableRefs == nil {
		return nil, compileerr.NewUnsupported("SELECT without FROM")
	}
	tableSource, ok := stmt.From.TableRefs.Left.(*ast.TableSource)
	if !ok {
		return nil, compileerr.NewUnsupported("FROM clause shape")
	}
	tableName, ok := tableSource.Source.(*ast.TableName)
	if !ok {
		return nil, compileerr.NewUnsupported("FROM source is not a bare table")
	}
	if stmt.From.TableRefs.Right != nil {
		return nil, compileerr.NewUnsupported("JOIN in FROM clause")
	}

	var child plan.LogicalPlan = plan.NewUnresolvedRelation(tableName.Name.String())
	if tableSource.AsName.L != "" {
		child = plan.NewSubqueryAlias(tableSource.AsName.String(), child)
	}

	if stmt.Where != nil {
		cond, err := a.convertExpr(stmt.Where)
		if err != nil {
			return nil, err
		}
		child = plan.NewFilter(cond, child)
	}

	if stmt.GroupBy != nil {
		return nil, compileerr.NewUnsupported("GROUP BY")
	}
	if stmt.Having != nil {
		return nil, compileerr.NewUnsupported("HAVING")
	}
	if stmt.OrderBy != nil {
		return nil, compileerr.NewUnsupported("ORDER BY")
	}

	projections, err := a.convertFields(stmt.Fields)
	if err != nil {
		return nil, err
	}
	child = plan.NewProject(projections, child)

	if stmt.Limit != nil {
		n, err := a.convertLimit(stmt.Limit)
		if err != nil {
			return nil, err
		}
		child = plan.NewLimit(n, child)
	}

	return child, nil
}

func (a *Adapter) convertFields(fields *ast.FieldList) ([]expr.Expr, error) {
	if fields == nil || len(fields.Fields) == 0 {
		return []expr.Expr{&expr.Star{}}, nil
	}
	projections := make([]expr.Expr, 0, len(fields.Fields))
	for _, field := range fields.Fields {
		if field.WildCard != nil {
			qualifier := ""
			if field.WildCard.Table.L != "" {
				qualifier = field.WildCard.Table.String()
			}
			projections = append(projections, &expr.Star{Qualifier: qualifier})
			continue
		}
		e, err := a.convertExpr(field.Expr)
		if err != nil {
			return nil, err
		}
		if field.AsName.L != "" {
			e = expr.NewAlias(e, field.AsName.String())
		}
		projections = append(projections, e)
	}
	return projections, nil
}

func (a *Adapter) convertLimit(lim *ast.Limit) (int64, error) {
	valExpr, ok := lim.Count.(ast.ValueExpr)
	if !ok {
		return 0, compileerr.NewUnsupported("non-literal LIMIT count")
	}
	n, ok := toInt64(valExpr.GetValue())
	if !ok {
		return 0, compileerr.NewUnsupported("non-integer LIMIT count")
	}
	return n, nil
}

func (a *Adapter) convertExpr(node ast.ExprNode) (expr.Expr, error) {
	switch n := node.(type) {
	case *ast.ParenthesesExpr:
		return a.convertExpr(n.Expr)

	case *ast.ColumnNameExpr:
		parts := []string{}
		if n.Name.Table.L != "" {
			parts = append(parts, n.Name.Table.String())
		}
		parts = append(parts, n.Name.Name.String())
		return expr.NewUnresolvedAttribute(parts...), nil

	case ast.ValueExpr:
		return convertLiteral(n), nil

	case *ast.IsNullExpr:
		child, err := a.convertExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		if n.Not {
			return expr.NewIsNotNull(child), nil
		}
		return expr.NewIsNull(child), nil

	case *ast.UnaryOperationExpr:
		child, err := a.convertExpr(n.V)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case opcode.Not, opcode.Not2:
			return expr.NewNot(child), nil
		case opcode.Minus:
			return expr.NewArithmetic(expr.Sub, expr.NewLiteral(int64(0), types.Int64), child), nil
		default:
			return nil, compileerr.NewUnsupported(fmt.Sprintf("unary operator %s", n.Op))
		}

	case *ast.BinaryOperationExpr:
		left, err := a.convertExpr(n.L)
		if err != nil {
			return nil, err
		}
		right, err := a.convertExpr(n.R)
		if err != nil {
			return nil, err
		}
		return convertBinaryOp(n.Op, left, right)

	default:
		return nil, compileerr.NewUnsupported(fmt.Sprintf("expression %T", node))
	}
}

func convertBinaryOp(op opcode.Op, l, r expr.Expr) (expr.Expr, error) {
	switch op {
	case opcode.Plus:
		return expr.NewArithmetic(expr.Add, l, r), nil
	case opcode.Minus:
		return expr.NewArithmetic(expr.Sub, l, r), nil
	case opcode.Mul:
		return expr.NewArithmetic(expr.Mul, l, r), nil
	case opcode.Div:
		return expr.NewArithmetic(expr.Div, l, r), nil
	case opcode.Mod:
		return expr.NewArithmetic(expr.Mod, l, r), nil
	case opcode.EQ:
		return expr.NewComparison(expr.Eq, l, r), nil
	case opcode.NE:
		return expr.NewComparison(expr.NotEq, l, r), nil
	case opcode.LT:
		return expr.NewComparison(expr.Lt, l, r), nil
	case opcode.LE:
		return expr.NewComparison(expr.LtEq, l, r), nil
	case opcode.GT:
		return expr.NewComparison(expr.Gt, l, r), nil
	case opcode.GE:
		return expr.NewComparison(expr.GtEq, l, r), nil
	case opcode.LogicAnd:
		return expr.NewAnd(l, r), nil
	case opcode.LogicOr:
		return expr.NewOr(l, r), nil
	default:
		return nil, compileerr.NewUnsupported(fmt.Sprintf("binary operator %s", op))
	}
}

func convertLiteral(v ast.ValueExpr) expr.Expr {
	val := v.GetValue()
	if val == nil {
		return expr.NullLiteral()
	}
	switch x := val.(type) {
	case int64:
		return expr.NewLiteral(x, types.Int64)
	case uint64:
		return expr.NewLiteral(int64(x), types.Int64)
	case float64:
		return expr.NewLiteral(x, types.Float64)
	case string:
		return expr.NewLiteral(x, types.String)
	case []byte:
		return expr.NewLiteral(string(x), types.String)
	default:
		return expr.NewLiteral(fmt.Sprintf("%v", x), types.String)
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case uint64:
		return int64(x), true
	case int:
		return int64(x), true
	default:
		return 0, false
	}
}
