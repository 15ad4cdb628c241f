package internal

// Padding defines spacing, in terminal cells, on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
