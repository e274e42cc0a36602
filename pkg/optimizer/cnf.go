package optimizer

import "github.com/sqlplan/logicplan/pkg/expr"

// ToCNF rewrites e into Conjunctive Normal Form: Not is pushed to the
// leaves via De Morgan's laws and double-negation elimination, then Or
// is distributed over And. If the distribution would produce more than
// maxClauses top-level conjuncts, e is returned unchanged — CNF
// distribution is exponential in the worst case, and the caller treats
// a skipped conversion as a no-op rather than a failure.
func ToCNF(e expr.Expr, maxClauses int) expr.Expr {
	pushed := pushNotInward(e)
	clauses := distribute(pushed)
	if len(clauses) > maxClauses {
		return e
	}
	return clausesToExpr(clauses)
}

func pushNotInward(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Not:
		return negate(pushNotInward(v.Child))
	case *expr.And:
		return expr.NewAnd(pushNotInward(v.L), pushNotInward(v.R))
	case *expr.Or:
		return expr.NewOr(pushNotInward(v.L), pushNotInward(v.R))
	default:
		return e
	}
}

// negate returns the pushed-down negation of an already-pushed e.
func negate(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Not:
		return v.Child
	case *expr.And:
		return expr.NewOr(negate(v.L), negate(v.R))
	case *expr.Or:
		return expr.NewAnd(negate(v.L), negate(v.R))
	case *expr.Comparison:
		return expr.NewComparison(invertCompareOp(v.Op), v.L, v.R)
	case *expr.IsNull:
		return expr.NewIsNotNull(v.Child)
	case *expr.IsNotNull:
		return expr.NewIsNull(v.Child)
	default:
		return expr.NewNot(e)
	}
}

// distribute expands e (already Not-pushed) into a list of clauses,
// each a list of disjuncts, whose conjunction is equivalent to e.
func distribute(e expr.Expr) [][]expr.Expr {
	switch v := e.(type) {
	case *expr.And:
		return append(distribute(v.L), distribute(v.R)...)
	case *expr.Or:
		left := distribute(v.L)
		right := distribute(v.R)
		out := make([][]expr.Expr, 0, len(left)*len(right))
		for _, lc := range left {
			for _, rc := range right {
				merged := make([]expr.Expr, 0, len(lc)+len(rc))
				merged = append(merged, lc...)
				merged = append(merged, rc...)
				out = append(out, merged)
			}
		}
		return out
	default:
		return [][]expr.Expr{{e}}
	}
}

func clausesToExpr(clauses [][]expr.Expr) expr.Expr {
	conjuncts := make([]expr.Expr, len(clauses))
	for i, c := range clauses {
		conjuncts[i] = orAll(c)
	}
	return andAll(conjuncts)
}
