package enums

import (
	"testing"

	"github.com/comalice/langtour/testutil"
)

func TestLessonGolden(t *testing.T) {
	testutil.AssertGolden(t, "enums", testutil.RunLesson(t, Lesson()))
}

func TestDirectionArms(t *testing.T) {
	tests := []struct {
		d       Direction
		heading string
		axis    string
	}{
		{North, "Heading North", "Moving vertically"},
		{South, "Heading South", "Moving vertically"},
		{East, "Heading East", "Moving horizontally"},
		{West, "Heading West", "Moving horizontally"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := Heading(tt.d); got != tt.heading {
				t.Errorf("Heading = %q, want %q", got, tt.heading)
			}
			if got := Axis(tt.d); got != tt.axis {
				t.Errorf("Axis = %q, want %q", got, tt.axis)
			}
		})
	}
}

func TestMessageVariants(t *testing.T) {
	tests := []struct {
		msg      Message
		describe string
		explain  string
	}{
		{Quit{}, "Quit", "The Quit variant has no data"},
		{Move{10, 20}, "Move to (10, 20)", "Move to (10, 20)"},
		{Write("Hello"), "Write: Hello", "Text message: Hello"},
		{ChangeColor{255, 0, 0}, "Change color to RGB(255, 0, 0)", "Color: RGB(255, 0, 0)"},
	}
	for _, tt := range tests {
		if got := Describe(tt.msg); got != tt.describe {
			t.Errorf("Describe(%#v) = %q, want %q", tt.msg, got, tt.describe)
		}
		if got := Explain(tt.msg); got != tt.explain {
			t.Errorf("Explain(%#v) = %q, want %q", tt.msg, got, tt.explain)
		}
	}
}

func TestSteerGuards(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{Move{1, 2}, "Moving to positive quadrant: (1, 2)"},
		{Move{5, -3}, "Moving to negative area: (5, -3)"},
		{Move{-1, 4}, "Moving to negative area: (-1, 4)"},
		{Move{0, 4}, "Moving to: (0, 4)"},
		{Quit{}, ""},
	}
	for _, tt := range tests {
		if got := Steer(tt.msg); got != tt.want {
			t.Errorf("Steer(%#v) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestIPFormatting(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FormatIP(IPv4("127.0.0.1")), "IPv4: 127.0.0.1"},
		{FormatIP(IPv6("::1")), "IPv6: ::1"},
		{FormatIPDetailed(IPv4Octets{127, 0, 0, 1}), "IPv4: 127.0.0.1"},
		{FormatIPDetailed(IPv6Text("::1")), "IPv6: ::1"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		s      Status
		active bool
		desc   string
	}{
		{Active, true, "User is active"},
		{Inactive, false, "User is inactive"},
		{Pending, false, "User status is pending"},
	}
	for _, tt := range tests {
		if tt.s.IsActive() != tt.active || tt.s.Description() != tt.desc {
			t.Errorf("status %d: active=%v desc=%q", tt.s, tt.s.IsActive(), tt.s.Description())
		}
	}
}

func TestColorVariants(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorRed{}, "Red"},
		{ColorGreen{}, "Green"},
		{ColorBlue{}, "Blue"},
		{NewRGB(255, 128, 0), "RGB(255, 128, 0)"},
		{HSV{H: 30, S: 100, V: 100}, "HSV(30, 100, 100)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestDivideSelectsTag(t *testing.T) {
	if r, ok := Divide(10, 2).(Success); !ok || r != 5 {
		t.Errorf("Divide(10, 2) = %#v, want Success(5)", Divide(10, 2))
	}
	if _, ok := Divide(10, 0).(DivisionByZero); !ok {
		t.Errorf("Divide(10, 0) = %#v, want DivisionByZero", Divide(10, 0))
	}
}

func TestReportCoversEveryTag(t *testing.T) {
	tests := []struct {
		r    OperationResult
		want string
	}{
		{Success(5), "Result: 5"},
		{DivisionByZero{}, "Error: Division by zero"},
		{NegativeNumber{}, "Error: Negative number"},
		{Overflow{}, "Error: Overflow"},
	}
	for _, tt := range tests {
		if got := Report(tt.r); got != tt.want {
			t.Errorf("Report(%#v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestTrafficLightCycle(t *testing.T) {
	light := Red
	want := []TrafficLight{Green, Yellow, Red}
	for i, w := range want {
		light = light.Next()
		if light != w {
			t.Fatalf("step %d: got %s, want %s", i+1, light, w)
		}
	}
}

func TestMaybeValue(t *testing.T) {
	some := Some(5)
	if !some.IsSome() || some.IsNone() || some.UnwrapOr(0) != 5 {
		t.Errorf("Some(5) = %+v", some)
	}
	none := Nothing[int]()
	if none.IsSome() || !none.IsNone() || none.UnwrapOr(7) != 7 {
		t.Errorf("Nothing = %+v", none)
	}
	var zero MaybeValue[string]
	if _, ok := zero.Get(); ok {
		t.Error("zero MaybeValue should hold nothing")
	}
}

func TestUnknownVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Heading on an out-of-range direction should panic")
		}
	}()
	Heading(Direction(42))
}
