package expr

import (
	"fmt"

	"github.com/sqlplan/logicplan/pkg/types"
)

// Foldable reports whether e's value is determined entirely at
// compile time: every leaf is a Literal and every operator along the
// way is deterministic (true of every operator this package defines).
func Foldable(e Expr) bool {
	switch v := e.(type) {
	case *Literal:
		return true
	case *Cast:
		return Foldable(v.Child)
	case *Not, *IsNull, *IsNotNull:
		return Foldable(e.Children()[0])
	case *And:
		return Foldable(v.L) && Foldable(v.R)
	case *Or:
		return Foldable(v.L) && Foldable(v.R)
	case *Arithmetic:
		return Foldable(v.L) && Foldable(v.R)
	case *Comparison:
		return Foldable(v.L) && Foldable(v.R)
	case *If:
		return Foldable(v.Cond) && Foldable(v.Then) && Foldable(v.Else)
	case *Coalesce:
		for _, a := range v.Args {
			if !Foldable(a) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Fold evaluates a Foldable expression to a Literal carrying its
// declared Type(). Panics if called on a non-foldable expression;
// callers must check Foldable first (mirrors the spec's "expr.evaluated
// is valid only when foldable").
func Fold(e Expr) *Literal {
	switch v := e.(type) {
	case *Literal:
		return v
	case *Cast:
		return foldCastNode(v)
	case *Not:
		return foldNot(v)
	case *IsNull:
		return foldIsNull(v)
	case *IsNotNull:
		return foldIsNotNull(v)
	case *And:
		return foldAnd(v)
	case *Or:
		return foldOr(v)
	case *Arithmetic:
		return foldArithmetic(v)
	case *Comparison:
		return foldComparison(v)
	case *If:
		return foldIf(v)
	case *Coalesce:
		return foldCoalesce(v)
	default:
		panic(fmt.Sprintf("expr: Fold called on non-foldable node %T", e))
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func numericLiteral(v float64, typ types.DataType) *Literal {
	if typ == types.Int64 {
		return NewLiteral(int64(v), types.Int64)
	}
	return NewLiteral(v, types.Float64)
}

func foldArithmetic(a *Arithmetic) *Literal {
	l, r := Fold(a.L), Fold(a.R)
	if l.IsNull() || r.IsNull() {
		return &Literal{Value: nil, Typ: a.Type()}
	}
	lf, _ := asFloat(l.Value)
	rf, _ := asFloat(r.Value)
	var result float64
	switch a.Op {
	case Add:
		result = lf + rf
	case Sub:
		result = lf - rf
	case Mul:
		result = lf * rf
	case Div:
		if rf == 0 {
			return &Literal{Value: nil, Typ: a.Type()}
		}
		result = lf / rf
	case Mod:
		if rf == 0 {
			return &Literal{Value: nil, Typ: a.Type()}
		}
		result = float64(int64(lf) % int64(rf))
	}
	return numericLiteral(result, a.Type())
}

func foldComparison(c *Comparison) *Literal {
	l, r := Fold(c.L), Fold(c.R)
	if l.IsNull() || r.IsNull() {
		return &Literal{Value: nil, Typ: types.Bool}
	}
	var cmp int
	if lf, ok := asFloat(l.Value); ok {
		rf, _ := asFloat(r.Value)
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		default:
			cmp = 0
		}
	} else {
		ls, _ := l.Value.(string)
		rs, _ := r.Value.(string)
		switch {
		case ls < rs:
			cmp = -1
		case ls > rs:
			cmp = 1
		default:
			cmp = 0
		}
	}
	var result bool
	switch c.Op {
	case Eq:
		result = cmp == 0
	case NotEq:
		result = cmp != 0
	case Lt:
		result = cmp < 0
	case LtEq:
		result = cmp <= 0
	case Gt:
		result = cmp > 0
	case GtEq:
		result = cmp >= 0
	}
	return NewLiteral(result, types.Bool)
}

// threeValued is NULL/TRUE/FALSE, the three truth values Kleene logic
// needs for And/Or folding.
type threeValued int

const (
	tvFalse threeValued = iota
	tvTrue
	tvNull
)

func toThreeValued(l *Literal) threeValued {
	if l.IsNull() {
		return tvNull
	}
	if b, ok := l.Value.(bool); ok && b {
		return tvTrue
	}
	return tvFalse
}

func fromThreeValued(tv threeValued) *Literal {
	switch tv {
	case tvTrue:
		return NewLiteral(true, types.Bool)
	case tvFalse:
		return NewLiteral(false, types.Bool)
	default:
		return &Literal{Value: nil, Typ: types.Bool}
	}
}

func foldAnd(a *And) *Literal {
	l, r := toThreeValued(Fold(a.L)), toThreeValued(Fold(a.R))
	if l == tvFalse || r == tvFalse {
		return fromThreeValued(tvFalse)
	}
	if l == tvNull || r == tvNull {
		return fromThreeValued(tvNull)
	}
	return fromThreeValued(tvTrue)
}

func foldOr(o *Or) *Literal {
	l, r := toThreeValued(Fold(o.L)), toThreeValued(Fold(o.R))
	if l == tvTrue || r == tvTrue {
		return fromThreeValued(tvTrue)
	}
	if l == tvNull || r == tvNull {
		return fromThreeValued(tvNull)
	}
	return fromThreeValued(tvFalse)
}

func foldNot(n *Not) *Literal {
	v := toThreeValued(Fold(n.Child))
	switch v {
	case tvTrue:
		return fromThreeValued(tvFalse)
	case tvFalse:
		return fromThreeValued(tvTrue)
	default:
		return fromThreeValued(tvNull)
	}
}

func foldIsNull(n *IsNull) *Literal {
	return NewLiteral(Fold(n.Child).IsNull(), types.Bool)
}

func foldIsNotNull(n *IsNotNull) *Literal {
	return NewLiteral(!Fold(n.Child).IsNull(), types.Bool)
}

func foldIf(i *If) *Literal {
	cond := toThreeValued(Fold(i.Cond))
	if cond == tvTrue {
		return withDeclaredType(Fold(i.Then), i.Type())
	}
	return withDeclaredType(Fold(i.Else), i.Type())
}

func foldCoalesce(c *Coalesce) *Literal {
	for _, a := range c.Args {
		lit := Fold(a)
		if !lit.IsNull() {
			return withDeclaredType(lit, c.Type())
		}
	}
	return &Literal{Value: nil, Typ: c.Type()}
}

// withDeclaredType converts lit to typ when they differ, so a folded
// If/Coalesce carries the node's promoted type, not its chosen argument's.
func withDeclaredType(lit *Literal, typ types.DataType) *Literal {
	if lit.Typ == typ {
		return lit
	}
	return foldCastNode(NewCast(lit, typ))
}

func foldCastNode(c *Cast) *Literal {
	child := Fold(c.Child)
	if child.IsNull() {
		return &Literal{Value: nil, Typ: c.Typ}
	}
	switch c.Typ {
	case types.Float64:
		f, _ := asFloat(child.Value)
		return NewLiteral(f, types.Float64)
	case types.Int64:
		f, _ := asFloat(child.Value)
		return NewLiteral(int64(f), types.Int64)
	case types.String:
		return NewLiteral(fmt.Sprintf("%v", child.Value), types.String)
	case types.Bool:
		if b, ok := child.Value.(bool); ok {
			return NewLiteral(b, types.Bool)
		}
		f, _ := asFloat(child.Value)
		return NewLiteral(f != 0, types.Bool)
	default:
		return child
	}
}
