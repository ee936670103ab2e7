package coerce

// EdgeInsets holds a four-sided inset in logical pixels.
type EdgeInsets struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// All returns uniform insets.
func All(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// Symmetric returns insets with equal left/right and equal top/bottom sides.
func Symmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Horizontal returns the combined left and right inset.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the combined top and bottom inset.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// ReadEdgeInsets decodes an inset from a bare number (uniform), an object with
// "all", an object with "horizontal"/"vertical", or explicit sides. Keys are
// applied in that order, so explicit sides win. Absent sides keep the fallback.
func ReadEdgeInsets(v any, fallback EdgeInsets) EdgeInsets {
	if v == nil {
		return fallback
	}

	m := AsMap(v)
	if m == nil {
		if n, ok := toFloat(v); ok {
			return All(n)
		}
		return fallback
	}

	out := fallback
	if n, ok := DoubleField(m, "all"); ok {
		out = All(n)
	}
	if n, ok := DoubleField(m, "horizontal"); ok {
		out.Left, out.Right = n, n
	}
	if n, ok := DoubleField(m, "vertical"); ok {
		out.Top, out.Bottom = n, n
	}
	if n, ok := DoubleField(m, "top"); ok {
		out.Top = n
	}
	if n, ok := DoubleField(m, "right"); ok {
		out.Right = n
	}
	if n, ok := DoubleField(m, "bottom"); ok {
		out.Bottom = n
	}
	if n, ok := DoubleField(m, "left"); ok {
		out.Left = n
	}
	return out
}
