package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// Literal is a constant value of a known (or, for untyped NULL, not yet
// fixed) type. Literal is always resolved: a constant needs no binding.
type Literal struct {
	Value any
	Typ   types.DataType
}

// NewLiteral builds a Literal of the given type.
func NewLiteral(value any, typ types.DataType) *Literal {
	return &Literal{Value: value, Typ: typ}
}

// NullLiteral builds the untyped SQL NULL constant.
func NullLiteral() *Literal {
	return &Literal{Value: nil, Typ: types.Null}
}

func (l *Literal) Children() []Expr             { return nil }
func (l *Literal) WithChildren(_ []Expr) Expr    { return l }
func (l *Literal) Type() types.DataType          { return l.Typ }
func (l *Literal) Resolved() bool                { return true }
func (l *Literal) Nullable() bool                { return l.Value == nil }
func (l *Literal) IsNull() bool                  { return l.Value == nil }
func (l *Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", l.Value)
}
