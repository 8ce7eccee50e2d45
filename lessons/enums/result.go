package enums

import "fmt"

// OperationResult is a result union with one success and three error tags.
type OperationResult interface {
	isOperationResult()
}

type (
	Success        int32
	DivisionByZero struct{}
	NegativeNumber struct{}
	Overflow       struct{}
)

func (Success) isOperationResult()        {}
func (DivisionByZero) isOperationResult() {}
func (NegativeNumber) isOperationResult() {}
func (Overflow) isOperationResult()       {}

// Divide selects DivisionByZero instead of panicking on a zero divisor.
func Divide(a, b int32) OperationResult {
	if b == 0 {
		return DivisionByZero{}
	}
	return Success(a / b)
}

func Report(r OperationResult) string {
	switch r := r.(type) {
	case Success:
		return fmt.Sprintf("Result: %d", int32(r))
	case DivisionByZero:
		return "Error: Division by zero"
	case NegativeNumber:
		return "Error: Negative number"
	case Overflow:
		return "Error: Overflow"
	}
	panic(fmt.Sprintf("enums: unknown result %T", r))
}

// MaybeValue is a generic optional value. The zero value holds nothing.
type MaybeValue[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) MaybeValue[T] {
	return MaybeValue[T]{value: v, some: true}
}

func Nothing[T any]() MaybeValue[T] {
	return MaybeValue[T]{}
}

func (m MaybeValue[T]) Get() (T, bool) {
	return m.value, m.some
}

func (m MaybeValue[T]) IsSome() bool {
	return m.some
}

func (m MaybeValue[T]) IsNone() bool {
	return !m.some
}

// UnwrapOr returns the held value, or def when there is none.
func (m MaybeValue[T]) UnwrapOr(def T) T {
	if !m.some {
		return def
	}
	return m.value
}
