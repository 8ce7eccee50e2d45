package structs

// Methods on a type may be declared in any file of its package.

// CanFit reports whether a width×height box fits inside r.
func (r Rectangle) CanFit(width, height float64) bool {
	return r.Width >= width && r.Height >= height
}
