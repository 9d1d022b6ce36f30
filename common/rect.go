package common

type Rect struct {
	X, Y          float32
	Width, Height float32
}

// CenteredRect returns a w*h rect whose centre sits on (cx, cy).
func CenteredRect(cx, cy, w, h float32) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Contains reports whether the point lies inside the rect. Edges are inclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

func (r Rect) Center() (float32, float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
