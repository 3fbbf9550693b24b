package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed content geometry for a given terminal size.
type Layout struct {
	Content  Rect
	TooSmall bool // true when terminal is below the minimum 60×16
}

// Calculate computes the centered content region for a terminal of the given
// dimensions. Returns a Layout with TooSmall=true if width < 60 or
// height < 16.
//
// The content column is 70% of the width, clamped to [44, 76], and centered
// horizontally; vertically it spans the full height (the views center their
// own output).
func Calculate(width, height int) Layout {
	if width < 60 || height < 16 {
		return Layout{TooSmall: true}
	}

	contentW := width * 70 / 100
	if contentW < 44 {
		contentW = 44
	}
	if contentW > 76 {
		contentW = 76
	}

	return Layout{
		Content: Rect{
			X:      (width - contentW) / 2,
			Y:      0,
			Width:  contentW,
			Height: height,
		},
	}
}
