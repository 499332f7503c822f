package grid

// Rect is a rectangle in backend render units (points), origin bottom-left
// with y increasing upward. By convention Y is the TOP edge of the rectangle;
// callers never construct a Rect directly except through System conversions.
type Rect struct {
	X      float64
	Y      float64 // top edge
	Width  float64
	Height float64
}

// Right returns the right edge x coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge y coordinate.
func (r Rect) Bottom() float64 { return r.Y - r.Height }

// Inset shrinks the rectangle by padding points on all four sides.
// Width and height clamp at zero, never negative.
func (r Rect) Inset(padding float64) Rect {
	w := r.Width - 2*padding
	h := r.Height - 2*padding
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + padding,
		Y:      r.Y - padding,
		Width:  w,
		Height: h,
	}
}
