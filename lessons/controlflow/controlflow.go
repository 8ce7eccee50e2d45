// Package controlflow is the control-flow lesson: if/else, the forms of the
// for loop, switch in its tag, tagless and binding forms, and labeled breaks.
package controlflow

import (
	"fmt"
	"strconv"

	"github.com/comalice/langtour"
)

// Lesson returns the control-flow lesson.
func Lesson() *langtour.Lesson {
	return langtour.NewLessonBuilder("controlflow").
		Banner("=== Go Control Flow Learning ===").
		Footer("=== End of Control Flow Examples ===").
		Spaced().
		Section("Basic if statement", basicIf).
		Section("if-else if-else chain", elseIfChain).
		Section("Conditional assignment", conditionalValue).
		Section("Multiple conditions", multipleConditions).
		Section("Infinite loop", infiniteLoop).
		Section("Loop producing a value", loopValue).
		Section("Condition-only loop", whileLoop).
		Section("Counting loop", countingLoop).
		Section("range over an array", rangeArray).
		Section("range with index", rangeIndex).
		Section("switch (basic)", switchBasic).
		Section("switch with multiple values", switchMultiple).
		Section("switch with ranges", switchRanges).
		Section("switch with destructuring", switchDestructure).
		Section("switch with guards", switchGuards).
		Section("switch on an optional value", switchOptional).
		Section("switch on an error result", switchResult).
		Section("if with comma-ok", ifCommaOk).
		Section("Loop until empty", popUntilEmpty).
		Section("Nested control flow", nestedFlow).
		Section("break and continue", breakContinue).
		Section("Loop labels", loopLabels).
		Section("switch with binding", switchBinding).
		Section("switch binding the value", switchCapture).
		MustBuild()
}

func basicIf(p *langtour.Printer) {
	p.Header("Basic if statement:")
	number := 7
	if number < 5 {
		p.Printf("   %d is less than 5\n", number)
	} else {
		p.Printf("   %d is not less than 5\n", number)
	}
}

func elseIfChain(p *langtour.Printer) {
	p.Header("if-else if-else chain:")
	p.Printf("   Grade: %s\n", Grade(85))
}

func conditionalValue(p *langtour.Printer) {
	p.Header("Conditional assignment:")
	condition := true
	result := 6
	if condition {
		result = 5
	}
	p.Printf("   Result: %d\n", result)
}

func multipleConditions(p *langtour.Printer) {
	p.Header("Multiple conditions:")
	age := 25
	hasLicense := true
	if age >= 18 && hasLicense {
		p.Println("   Can drive!")
	}
	if age < 18 || !hasLicense {
		p.Println("   Cannot drive")
	}
}

func infiniteLoop(p *langtour.Printer) {
	p.Header("for loop (infinite loop - breaking after 3 iterations):")
	counter := 0
	for {
		counter++
		if counter > 3 {
			break
		}
		p.Printf("   %d", counter)
	}
	p.Println()
}

func loopValue(p *langtour.Printer) {
	p.Header("Loop producing a value:")
	counter := 0
	var result int
	for {
		counter++
		if counter == 5 {
			result = counter * 2
			break
		}
	}
	p.Printf("   Loop returned: %d\n", result)
}

func whileLoop(p *langtour.Printer) {
	p.Header("Condition-only loop:")
	number := 3
	for number != 0 {
		p.Printf("   %d", number)
		number--
	}
	p.Println("\n   Liftoff!")
}

func countingLoop(p *langtour.Printer) {
	p.Header("Counting loop:")
	p.Print("   ")
	for i := 1; i <= 5; i++ {
		p.Printf("%d ", i)
	}
	p.Println()
}

func rangeArray(p *langtour.Printer) {
	p.Header("range over an array:")
	arr := [...]int{10, 20, 30, 40, 50}
	p.Print("   ")
	for _, element := range arr {
		p.Printf("%d ", element)
	}
	p.Println()
}

func rangeIndex(p *langtour.Printer) {
	p.Header("range with index:")
	items := []string{"apple", "banana", "cherry"}
	for index, item := range items {
		p.Printf("   %d: %s\n", index, item)
	}
}

func switchBasic(p *langtour.Printer) {
	p.Header("switch (basic):")
	p.Printf("   %s\n", Spell(3))
}

func switchMultiple(p *langtour.Printer) {
	p.Header("switch with multiple values:")
	p.Printf("   %s\n", Size(2))
}

func switchRanges(p *langtour.Printer) {
	p.Header("switch with ranges:")
	p.Printf("   %s\n", AgeGroup(25))
}

func switchDestructure(p *langtour.Printer) {
	p.Header("switch with destructuring:")
	p.Printf("   %s\n", Locate(Point{3, 5}))
}

func switchGuards(p *langtour.Printer) {
	p.Header("switch with guards:")
	p.Printf("   %s\n", Compare(some(4)))
}

func switchOptional(p *langtour.Printer) {
	p.Header("switch on an optional value:")
	someValue := some(42)
	switch {
	case someValue != nil:
		p.Printf("   Got value: %d\n", *someValue)
	default:
		p.Println("   No value")
	}
}

func switchResult(p *langtour.Printer) {
	p.Header("switch on an error result:")
	value, err := strconv.Atoi("200")
	switch {
	case err == nil:
		p.Printf("   Success: %d\n", value)
	default:
		p.Printf("   Error: %v\n", err)
	}
}

func ifCommaOk(p *langtour.Printer) {
	p.Header("if with comma-ok:")
	numbers := map[string]int{"seven": 7}
	if value, ok := numbers["seven"]; ok {
		p.Printf("   Got value: %d\n", value)
	} else {
		p.Println("   No value")
	}
}

func popUntilEmpty(p *langtour.Printer) {
	p.Header("Loop until empty:")
	stack := []int{1, 2, 3}
	p.Print("   Popped: ")
	for top, ok := Pop(&stack); ok; top, ok = Pop(&stack) {
		p.Printf("%d ", top)
	}
	p.Println()
}

func nestedFlow(p *langtour.Printer) {
	p.Header("Nested control flow:")
	for i := 1; i <= 10; i++ {
		if i%2 == 0 {
			switch i {
			case 2, 4, 6, 8:
				p.Printf("   %d is a small even number\n", i)
			case 10:
				p.Printf("   %d is ten!\n", i)
			default:
				p.Printf("   %d is even\n", i)
			}
		}
	}
}

func breakContinue(p *langtour.Printer) {
	p.Header("break and continue:")
	p.Print("   ")
	for i := 1; i <= 10; i++ {
		if i == 3 {
			continue // skip 3
		}
		if i == 8 {
			break // stop at 8
		}
		p.Printf("%d ", i)
	}
	p.Println()
}

func loopLabels(p *langtour.Printer) {
	p.Header("Loop labels:")
	visited, stop := LabeledPairs(3)
	for _, pair := range visited {
		p.Printf("   (%d, %d) ", pair.X, pair.Y)
	}
	p.Printf("   Breaking outer loop at i=%d, j=%d\n", stop.X, stop.Y)
	p.Println()
}

func switchBinding(p *langtour.Printer) {
	p.Header("switch with binding:")
	point := Point{0, 5}
	switch x, y := point.X, point.Y; {
	case x == 0:
		p.Printf("   On y-axis at %d\n", y)
	default:
		p.Printf("   Point (%d, %d)\n", x, y)
	}
}

func switchCapture(p *langtour.Printer) {
	p.Header("switch binding the value:")
	p.Printf("   %s\n", AgeWithValue(25))
}

// ---

// Grade maps a score onto a letter with an if-else if chain.
func Grade(score int) string {
	var grade string
	if score >= 90 {
		grade = "A"
	} else if score >= 80 {
		grade = "B"
	} else if score >= 70 {
		grade = "C"
	} else {
		grade = "F"
	}
	return grade
}

func Spell(number int) string {
	switch number {
	case 1:
		return "One"
	case 2:
		return "Two"
	case 3:
		return "Three"
	default:
		return "Something else"
	}
}

func Size(number int) string {
	switch number {
	case 1, 2, 3:
		return "Small number"
	case 4, 5, 6:
		return "Medium number"
	default:
		return "Large number"
	}
}

func AgeGroup(age int) string {
	switch {
	case age >= 0 && age <= 12:
		return "Child"
	case age >= 13 && age <= 19:
		return "Teenager"
	case age >= 20 && age <= 64:
		return "Adult"
	default:
		return "Senior"
	}
}

// AgeWithValue is AgeGroup that keeps the matched value in its answer.
func AgeWithValue(age int) string {
	switch n := age; {
	case n >= 0 && n <= 12:
		return fmt.Sprintf("Child (age %d)", n)
	case n >= 13 && n <= 19:
		return fmt.Sprintf("Teenager (age %d)", n)
	default:
		return fmt.Sprintf("Adult (age %d)", n)
	}
}

type Point struct {
	X, Y int
}

// Locate switches on the point's coordinates, most specific case first.
func Locate(point Point) string {
	switch {
	case point == Point{0, 0}:
		return "Origin"
	case point.X == 0:
		return fmt.Sprintf("On y-axis at y=%d", point.Y)
	case point.Y == 0:
		return fmt.Sprintf("On x-axis at x=%d", point.X)
	default:
		return fmt.Sprintf("Point at (%d, %d)", point.X, point.Y)
	}
}

// Compare classifies an optional number; nil means no value.
func Compare(number *int) string {
	switch {
	case number != nil && *number < 5:
		return fmt.Sprintf("Less than 5: %d", *number)
	case number != nil && *number >= 5:
		return fmt.Sprintf("Greater or equal to 5: %d", *number)
	case number != nil:
		return "Some other value" // unreachable: the guards above cover every int
	default:
		return "None"
	}
}

// Pop removes and returns the last element; ok is false once the stack is empty.
func Pop(stack *[]int) (top int, ok bool) {
	s := *stack
	if len(s) == 0 {
		return 0, false
	}
	top, *stack = s[len(s)-1], s[:len(s)-1]
	return top, true
}

// LabeledPairs walks an n×n grid and leaves both loops at (2, 2).
// It returns the pairs visited before the break and where it stopped.
func LabeledPairs(n int) (visited []Point, stop Point) {
outer:
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == 2 && j == 2 {
				stop = Point{i, j}
				break outer
			}
			visited = append(visited, Point{i, j})
		}
	}
	return visited, stop
}

func some(v int) *int {
	return &v
}
