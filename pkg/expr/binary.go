package expr

// BinaryOperator is implemented by every null-strict two-operand
// expression: arithmetic and comparisons. It deliberately excludes And
// and Or, which have their own three-valued NULL handling (a NULL
// operand does not always make the result NULL — TRUE OR NULL is
// TRUE) and must not be widened or null-propagated by the generic
// rules that key off this interface.
type BinaryOperator interface {
	Expr
	Left() Expr
	Right() Expr
	// WithOperands returns a copy of the receiver with its operands
	// replaced, used by ApplyImplicitCasts.
	WithOperands(left, right Expr) Expr
}
