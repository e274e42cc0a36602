package expr

// unwrapAlias strips an Alias wrapper, which renames its child without
// changing its value — SameOrEqual compares values "modulo alias
// naming" per spec.md §3.
func unwrapAlias(e Expr) Expr {
	if a, ok := e.(*Alias); ok {
		return unwrapAlias(a.Child)
	}
	return e
}

// SameOrEqual reports structural equality between a and b, unwrapping
// any Alias on either side first. Two AttributeRefs are equal iff
// their AttrID matches; every other node kind is compared field-wise,
// recursing into children via SameOrEqual.
func SameOrEqual(a, b Expr) bool {
	a, b = unwrapAlias(a), unwrapAlias(b)

	switch av := a.(type) {
	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.Typ == bv.Typ && av.Value == bv.Value
	case *AttributeRef:
		bv, ok := b.(*AttributeRef)
		return ok && av.ID == bv.ID
	case *UnresolvedAttribute:
		bv, ok := b.(*UnresolvedAttribute)
		return ok && av.String() == bv.String()
	case *Star:
		bv, ok := b.(*Star)
		return ok && av.Qualifier == bv.Qualifier
	case *Cast:
		bv, ok := b.(*Cast)
		return ok && av.Typ == bv.Typ && SameOrEqual(av.Child, bv.Child)
	case *Not:
		bv, ok := b.(*Not)
		return ok && SameOrEqual(av.Child, bv.Child)
	case *And:
		bv, ok := b.(*And)
		return ok && SameOrEqual(av.L, bv.L) && SameOrEqual(av.R, bv.R)
	case *Or:
		bv, ok := b.(*Or)
		return ok && SameOrEqual(av.L, bv.L) && SameOrEqual(av.R, bv.R)
	case *Arithmetic:
		bv, ok := b.(*Arithmetic)
		return ok && av.Op == bv.Op && SameOrEqual(av.L, bv.L) && SameOrEqual(av.R, bv.R)
	case *Comparison:
		bv, ok := b.(*Comparison)
		return ok && av.Op == bv.Op && SameOrEqual(av.L, bv.L) && SameOrEqual(av.R, bv.R)
	case *If:
		bv, ok := b.(*If)
		return ok && SameOrEqual(av.Cond, bv.Cond) && SameOrEqual(av.Then, bv.Then) && SameOrEqual(av.Else, bv.Else)
	case *Coalesce:
		bv, ok := b.(*Coalesce)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !SameOrEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *IsNull:
		bv, ok := b.(*IsNull)
		return ok && SameOrEqual(av.Child, bv.Child)
	case *IsNotNull:
		bv, ok := b.(*IsNotNull)
		return ok && SameOrEqual(av.Child, bv.Child)
	default:
		return false
	}
}
