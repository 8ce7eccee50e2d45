// Package variables is the bindings lesson: constants versus variables,
// declared types, shadowing, zero values, strings, arrays and tuple-like structs.
package variables

import (
	"strings"

	"github.com/comalice/langtour"
)

// MaxPoints must carry its type explicitly to be usable as a uint32 everywhere.
const MaxPoints uint32 = 100_000

// Lesson returns the bindings lesson.
func Lesson() *langtour.Lesson {
	return langtour.NewLessonBuilder("variables").
		Banner("=== Go Variables Learning ===").
		Footer("=== End of Variables Examples ===").
		Section("Immutable variable", immutable).
		Section("Mutable variable", mutable).
		Section("Type annotations", typeAnnotations).
		Section("Variable shadowing", shadowing).
		Section("Constant", constant).
		Section("Multiple variables", multiple).
		Section("Uninitialized variable", deferredInit).
		Section("String types", stringTypes).
		Section("Array", arrays).
		Section("Tuple", tuples).
		MustBuild()
}

func immutable(p *langtour.Printer) {
	const x = 5
	p.Header("Immutable variable: x = %d", x)
	// x = 6 // cannot assign to x (neither addressable nor a map index expression)
}

func mutable(p *langtour.Printer) {
	y := 10
	p.Header("Before mutation: y = %d", y)
	y = 20
	p.Printf("   After mutation: y = %d\n", y)
}

func typeAnnotations(p *langtour.Printer) {
	var integer int32 = 42
	var floating float64 = 3.14
	var boolean bool = true
	var character rune = 'A'
	p.Header("Type annotations:")
	p.Printf("   integer: %d (int32)\n", integer)
	p.Printf("   floating: %v (float64)\n", floating)
	p.Printf("   boolean: %t (bool)\n", boolean)
	p.Printf("   character: %c (rune)\n", character)
}

func shadowing(p *langtour.Printer) {
	shadow := 5
	p.Header("Variable shadowing:")
	p.Printf("   Original shadow = %d\n", shadow)
	{
		shadow := shadow + 1 // a new variable in the inner scope
		p.Printf("   Shadowed shadow = %d\n", shadow)
		{
			shadow := "now I'm a string!"
			p.Printf("   Shadowed again: shadow = %s\n", shadow)
		}
	}
}

func constant(p *langtour.Printer) {
	p.Header("Constant: MaxPoints = %d", MaxPoints)
}

func multiple(p *langtour.Printer) {
	a, b, c := 1, 2, 3
	p.Header("Multiple variables: a=%d, b=%d, c=%d", a, b, c)
}

func deferredInit(p *langtour.Printer) {
	var uninitialized int32
	// Declared variables start at their zero value; declaring one and never
	// using it is the compile error ("declared and not used").
	uninitialized = 100
	p.Header("Uninitialized (now initialized): %d", uninitialized)
}

func stringTypes(p *langtour.Printer) {
	stringLiteral := "Hello"
	var owned strings.Builder
	owned.WriteString("World")
	p.Header("String types:")
	p.Printf("   string_literal: %s (type: string)\n", stringLiteral)
	p.Printf("   owned_string: %s (type: strings.Builder)\n", owned.String())
}

func arrays(p *langtour.Printer) {
	array := [5]int{1, 2, 3, 4, 5}
	p.Header("Array: %s", langtour.List(array[:]))
	p.Printf("   First element: %d\n", array[0])
}

// Triple is a heterogeneous fixed-size group of values.
type Triple struct {
	First  int32
	Second float64
	Third  bool
}

func (t Triple) String() string {
	return langtour.Tuple(t.First, t.Second, t.Third)
}

func tuples(p *langtour.Printer) {
	tuple := Triple{42, 3.14, true}
	p.Header("Tuple: %s", tuple)
	p.Printf("    First element: %d\n", tuple.First)
	p.Printf("    Second element: %v\n", tuple.Second)
	p.Printf("    Third element: %t\n", tuple.Third)
}
