package lox

const (
	msgOperandNumber  = "Operand must be a number."
	msgOperandsNumber = "Operands must be numbers."
)

func (in *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}
	switch e.Operator.Type {
	case TokenBang:
		return NewBool(!right.Truthy()), nil
	case TokenMinus:
		if right.Kind() != KindNumber {
			return NewNil(), newRuntimeError(e.Operator, msgOperandNumber)
		}
		return NewNumber(-right.Number()), nil
	default:
		return NewNil(), newRuntimeError(e.Operator, "Unsupported unary operator.")
	}
}

// evalBinary evaluates both operands, left first, before applying the
// operator.
func (in *Interpreter) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return NewNil(), err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator.Type {
	case TokenEqualEqual:
		return NewBool(left.Equal(right)), nil
	case TokenBangEqual:
		return NewBool(!left.Equal(right)), nil
	case TokenPlus:
		if left.Kind() == KindString && right.Kind() == KindString {
			return NewString(left.Str() + right.Str()), nil
		}
	}

	if left.Kind() != KindNumber || right.Kind() != KindNumber {
		return NewNil(), newRuntimeError(e.Operator, msgOperandsNumber)
	}
	l, r := left.Number(), right.Number()

	switch e.Operator.Type {
	case TokenPlus:
		return NewNumber(l + r), nil
	case TokenMinus:
		return NewNumber(l - r), nil
	case TokenStar:
		return NewNumber(l * r), nil
	case TokenSlash:
		// Division by zero yields an infinity or NaN.
		return NewNumber(l / r), nil
	case TokenGreater:
		return NewBool(l > r), nil
	case TokenGreaterEqual:
		return NewBool(l >= r), nil
	case TokenLess:
		return NewBool(l < r), nil
	case TokenLessEqual:
		return NewBool(l <= r), nil
	default:
		return NewNil(), newRuntimeError(e.Operator, "Unsupported binary operator.")
	}
}

// evalLogical short-circuits: the right operand is evaluated only when the
// left one does not settle the result. The result is the deciding operand
// itself, not a coerced boolean.
func (in *Interpreter) evalLogical(e *LogicalExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return NewNil(), err
	}
	switch e.Operator.Type {
	case TokenOr:
		if left.Truthy() {
			return left, nil
		}
	case TokenAnd:
		if !left.Truthy() {
			return left, nil
		}
	default:
		return NewNil(), newRuntimeError(e.Operator, "Unsupported logical operator.")
	}
	return in.evaluate(e.Right)
}
