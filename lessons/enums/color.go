package enums

import "fmt"

// Color mixes payload-free variants with positional and named payloads.
type Color interface {
	fmt.Stringer
	isColor()
}

type (
	ColorRed   struct{}
	ColorGreen struct{}
	ColorBlue  struct{}
	RGB        struct{ R, G, B uint8 }
	HSV        struct {
		H    uint16
		S, V uint8
	}
)

func (ColorRed) isColor()   {}
func (ColorGreen) isColor() {}
func (ColorBlue) isColor()  {}
func (RGB) isColor()        {}
func (HSV) isColor()        {}

// NewRGB is the constructor for the RGB variant.
func NewRGB(r, g, b uint8) Color {
	return RGB{r, g, b}
}

func (ColorRed) String() string   { return "Red" }
func (ColorGreen) String() string { return "Green" }
func (ColorBlue) String() string  { return "Blue" }

func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSV) String() string {
	return fmt.Sprintf("HSV(%d, %d, %d)", c.H, c.S, c.V)
}
