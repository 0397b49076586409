// Package calculator provides basic arithmetic operations.
package calculator

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a minus b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a times b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns the true quotient of a and b as a float64, so 7 / 2 is 3.5
// for integer operands too. It returns ErrDivisionByZero if b is zero.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}
