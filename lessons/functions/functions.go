// Package functions is the functions lesson: parameters, results, early
// returns, multiple results, pointer parameters and call composition.
package functions

import (
	"fmt"
	"math"

	"github.com/comalice/langtour"
)

// Lesson returns the functions lesson.
func Lesson() *langtour.Lesson {
	return langtour.NewLessonBuilder("functions").
		Banner("=== Go Functions Learning ===").
		Footer("=== End of Functions Examples ===").
		Spaced().
		Section("Basic function", basic).
		Section("Function with return value", withResult).
		Section("Named result", namedResult).
		Section("Function with no result", noResult).
		Section("Multiple parameters", multipleParams).
		Section("Different parameter types", floatParams).
		Section("Early return", earlyReturn).
		Section("Returning multiple values", multipleResults).
		Section("Read-only pointer parameter", readOnlyPointer).
		Section("Mutating through a pointer", mutatingPointer).
		Section("Returning a string", returnsString).
		Section("Nested function calls", nested).
		Section("Conditional logic in function", conditional).
		Section("Slice parameter", sliceParam).
		Section("Struct parameter", structParam).
		MustBuild()
}

func basic(p *langtour.Printer) {
	p.Header("Basic function:")
	Greet(p, "Alice")
}

func withResult(p *langtour.Printer) {
	p.Header("Function with return value:")
	sum := Add(5, 3)
	p.Printf("   Add(5, 3) = %d\n", sum)
}

func namedResult(p *langtour.Printer) {
	p.Header("Named result:")
	product := Multiply(4, 7)
	p.Printf("   Multiply(4, 7) = %d\n", product)
}

func noResult(p *langtour.Printer) {
	p.Header("Function with no result:")
	PrintNumber(p, 42)
}

func multipleParams(p *langtour.Printer) {
	p.Header("Multiple parameters:")
	result := Calculate(10, 5, 2)
	p.Printf("   Calculate(10, 5, 2) = %d\n", result)
}

func floatParams(p *langtour.Printer) {
	p.Header("Different parameter types:")
	area := RectangleArea(5.5, 3.2)
	p.Printf("   RectangleArea(5.5, 3.2) = %v\n", area)
}

func earlyReturn(p *langtour.Printer) {
	p.Header("Early return:")
	value, ok := CheckPositive(-5)
	p.Printf("   CheckPositive(-5) = %s\n", langtour.Option(value, ok))
	value2, ok2 := CheckPositive(10)
	p.Printf("   CheckPositive(10) = %s\n", langtour.Option(value2, ok2))
}

func multipleResults(p *langtour.Printer) {
	p.Header("Returning multiple values:")
	quotient, remainder := Divide(17, 5)
	p.Printf("   Divide(17, 5) = (%d, %d)\n", quotient, remainder)
}

func readOnlyPointer(p *langtour.Printer) {
	p.Header("Read-only pointer parameter:")
	num := 100
	PrintValue(p, &num)
	p.Printf("   Original value unchanged: %d\n", num)
}

func mutatingPointer(p *langtour.Printer) {
	p.Header("Mutating through a pointer:")
	counter := 0
	Increment(&counter)
	Increment(&counter)
	p.Printf("   Counter after two increments: %d\n", counter)
}

func returnsString(p *langtour.Printer) {
	p.Header("Returning a string:")
	message := CreateGreeting("Bob")
	p.Printf("   %s\n", message)
}

func nested(p *langtour.Printer) {
	p.Header("Nested function calls:")
	result := Add(Multiply(2, 3), Multiply(4, 5))
	p.Printf("   Add(Multiply(2, 3), Multiply(4, 5)) = %d\n", result)
}

func conditional(p *langtour.Printer) {
	p.Header("Conditional logic in function:")
	p.Printf("   Max(15, 23) = %d\n", Max(15, 23))
	p.Printf("   Max(100, 50) = %d\n", Max(100, 50))
}

func sliceParam(p *langtour.Printer) {
	p.Header("Slice parameter:")
	numbers := [...]int32{1, 2, 3, 4, 5}
	sum := ArraySum(numbers[:])
	p.Printf("   ArraySum(%s) = %d\n", langtour.List(numbers[:]), sum)
}

func structParam(p *langtour.Printer) {
	p.Header("Struct parameter:")
	point := Point{3.0, 4.0}
	distance := DistanceFromOrigin(point)
	p.Printf("   DistanceFromOrigin(%s) = %.2f\n", point, distance)
}

// ---

// Greet prints a greeting and returns nothing.
func Greet(p *langtour.Printer, name string) {
	p.Printf("   Hello, %s!\n", name)
}

func Add(a, b int32) int32 {
	return a + b
}

// Multiply names its result and returns it with a bare return.
func Multiply(a, b int32) (product int32) {
	product = a * b
	return
}

func PrintNumber(p *langtour.Printer, n int32) {
	p.Printf("   Number: %d\n", n)
}

func Calculate(a, b, c int32) int32 {
	return a*b + c
}

func RectangleArea(width, height float64) float64 {
	return width * height
}

// CheckPositive reports n and true, or false as soon as n is negative.
func CheckPositive(n int32) (int32, bool) {
	if n < 0 {
		return 0, false
	}
	return n, true
}

// Divide returns the truncated quotient and the remainder.
// divisor must be non-zero; zero panics like any integer division.
func Divide(dividend, divisor int32) (quotient, remainder int32) {
	quotient = dividend / divisor
	remainder = dividend % divisor
	return quotient, remainder
}

// PrintValue only reads through x.
func PrintValue(p *langtour.Printer, x *int) {
	p.Printf("   Value: %d\n", *x)
}

// Increment changes the caller's variable.
func Increment(x *int) {
	*x++
}

func CreateGreeting(name string) string {
	return fmt.Sprintf("Greeting: Hello, %s! Welcome to Go!", name)
}

func Max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// ArraySum reads arr without modifying it.
func ArraySum(arr []int32) int32 {
	var sum int32
	for _, num := range arr {
		sum += num
	}
	return sum
}

// Point is a pair of coordinates passed by value.
type Point struct {
	X, Y float64
}

func (pt Point) String() string {
	return langtour.Tuple(pt.X, pt.Y)
}

func DistanceFromOrigin(point Point) float64 {
	x, y := point.X, point.Y
	return math.Sqrt(x*x + y*y)
}
