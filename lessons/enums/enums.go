// Package enums is the tagged-union lesson. Payload-free enumerations are
// iota constants; unions with payloads are closed interfaces with one
// concrete type per variant, taken apart with type switches.
package enums

import (
	"errors"

	"github.com/comalice/langtour"
)

// The capital letter is part of the printed line.
var errSomethingWentWrong = errors.New("Something went wrong") //nolint:staticcheck // ST1005

// Lesson returns the tagged-union lesson.
func Lesson() *langtour.Lesson {
	return langtour.NewLessonBuilder("enums").
		Banner("=== Go Enums Learning ===").
		Footer("=== End of Enums Examples ===").
		Spaced().
		Section("Basic enum", basicEnum).
		Section("Variant with named fields", namedPayload).
		Section("Variant with a single value", singlePayload).
		Section("Type switch over every variant", everyVariant).
		Section("IP address union", ipAddr).
		Section("Detailed IP address union", ipAddrDetailed).
		Section("Enum methods", enumMethods).
		Section("Constructor function", constructor).
		Section("Type switch with payloads", payloadSwitch).
		Section("Single-variant type assertion", typeAssertion).
		Section("Optional values", optionalValues).
		Section("Error results", errorResults).
		Section("Custom result union", customResult).
		Section("Generic union", genericUnion).
		Section("State machine", stateMachine).
		Section("Guards on payload fields", guards).
		Section("switch with multiple values", multipleValues).
		Section("MaybeValue methods", maybeMethods).
		MustBuild()
}

func basicEnum(p *langtour.Printer) {
	p.Header("Basic enum:")
	direction := North
	p.Printf("   %s\n", Heading(direction))
}

func namedPayload(p *langtour.Printer) {
	p.Header("Variant with named fields:")
	var msg1 Message = Move{X: 10, Y: 20}
	switch m := msg1.(type) {
	case Move:
		p.Printf("   Move to (%d, %d)\n", m.X, m.Y)
	}
}

func singlePayload(p *langtour.Printer) {
	p.Header("Variant with a single value:")
	var msg2 Message = Write("Hello")
	switch m := msg2.(type) {
	case Write:
		p.Printf("   Write: %s\n", string(m))
	}
}

func everyVariant(p *langtour.Printer) {
	p.Header("Type switch over every variant:")
	msg3 := ChangeColor{255, 0, 0}
	p.Printf("   %s\n", Describe(msg3))
}

func ipAddr(p *langtour.Printer) {
	p.Header("IP address union:")
	home := IPv4("127.0.0.1")
	p.Printf("   %s\n", FormatIP(home))
}

func ipAddrDetailed(p *langtour.Printer) {
	p.Header("Detailed IP address union:")
	homeDetailed := IPv4Octets{127, 0, 0, 1}
	p.Printf("   %s\n", FormatIPDetailed(homeDetailed))
}

func enumMethods(p *langtour.Printer) {
	p.Header("Enum methods:")
	for _, status := range []Status{Active, Pending} {
		p.Printf("   Is active? %t\n", status.IsActive())
		p.Printf("   Description: %s\n", status.Description())
	}
}

func constructor(p *langtour.Printer) {
	p.Header("Constructor function:")
	color1 := NewRGB(255, 128, 0)
	p.Printf("   Color: %s\n", color1)

	var color2 Color = HSV{H: 30, S: 100, V: 100}
	p.Printf("   Color: %s\n", color2)
}

func payloadSwitch(p *langtour.Printer) {
	p.Header("Type switch with payloads:")
	var msg4 Message = Quit{}
	p.Printf("   %s\n", Explain(msg4))
}

func typeAssertion(p *langtour.Printer) {
	p.Header("Single-variant type assertion:")
	var msg5 Message = Write("Hello, Go!")
	if text, ok := msg5.(Write); ok {
		p.Printf("   Got message: %s\n", string(text))
	}
}

func optionalValues(p *langtour.Printer) {
	p.Header("Optional values:")
	five := 5
	someNumber := &five
	var noNumber *int

	if someNumber != nil {
		p.Printf("   Got value: %d\n", *someNumber)
	} else {
		p.Println("   No value")
	}

	if noNumber != nil {
		p.Printf("   Got value: %d\n", *noNumber)
	} else {
		p.Println("   No value (None)")
	}
}

func errorResults(p *langtour.Printer) {
	p.Header("Error results:")
	success := func() (int32, error) { return 42, nil }
	failure := func() (int32, error) { return 0, errSomethingWentWrong }

	for _, attempt := range []func() (int32, error){success, failure} {
		value, err := attempt()
		if err != nil {
			p.Printf("   Error: %v\n", err)
			continue
		}
		p.Printf("   Success: %d\n", value)
	}
}

func customResult(p *langtour.Printer) {
	p.Header("Custom result union:")
	result1 := Divide(10, 2)
	p.Printf("   %s\n", Report(result1))

	result2 := Divide(10, 0)
	p.Printf("   %s\n", Report(result2))
}

func genericUnion(p *langtour.Printer) {
	p.Header("Generic union:")
	maybeInt := Some[int32](42)
	maybeString := Some("Hello")
	nothing := Nothing[int32]()

	if value, ok := maybeInt.Get(); ok {
		p.Printf("   Got integer: %d\n", value)
	} else {
		p.Println("   No value")
	}

	if value, ok := maybeString.Get(); ok {
		p.Printf("   Got string: %s\n", value)
	} else {
		p.Println("   No value")
	}

	if value, ok := nothing.Get(); ok {
		p.Printf("   Got value: %d\n", value)
	} else {
		p.Println("   No value (None)")
	}
}

func stateMachine(p *langtour.Printer) {
	p.Header("State machine:")
	light := Red
	p.Printf("   Current: %s\n", light)

	light = light.Next()
	p.Printf("   After next: %s\n", light)

	light = light.Next()
	p.Printf("   After next: %s\n", light)
}

func guards(p *langtour.Printer) {
	p.Header("Guards on payload fields:")
	msg6 := Move{X: 5, Y: -3}
	if s := Steer(msg6); s != "" {
		p.Printf("   %s\n", s)
	}
}

func multipleValues(p *langtour.Printer) {
	p.Header("switch with multiple values:")
	direction2 := North
	p.Printf("   %s\n", Axis(direction2))
}

func maybeMethods(p *langtour.Printer) {
	p.Header("MaybeValue methods:")
	someValue := Some(5)
	p.Printf("   IsSome: %t\n", someValue.IsSome())
	p.Printf("   IsNone: %t\n", someValue.IsNone())

	if value, ok := someValue.Get(); ok {
		p.Printf("   Unwrapped value: %d\n", value)
	}

	noneValue := Nothing[int]()
	def := noneValue.UnwrapOr(0)
	p.Printf("   Default value: %d\n", def)
}
