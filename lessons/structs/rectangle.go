package structs

type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle is the conventional constructor.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Square builds a rectangle with equal sides.
func Square(size float64) Rectangle {
	return Rectangle{
		Width:  size,
		Height: size,
	}
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (r Rectangle) Perimeter() float64 {
	return 2.0 * (r.Width + r.Height)
}

func (r Rectangle) IsSquare() bool {
	return r.Width == r.Height
}

// Resize needs a pointer receiver to change the caller's rectangle.
func (r *Rectangle) Resize(width, height float64) {
	r.Width = width
	r.Height = height
}
