package core

import "math"

// PartialLineView describes how much of one line intersects the viewport.
// Fractional scroll offsets mean the first and last visible lines are
// usually clipped; renderers draw only the visible band of each line.
type PartialLineView struct {
	// LineIndex is the line's index in the buffer.
	LineIndex int
	// YOffset is the line's top edge relative to the viewport top; it is
	// negative when the line starts above the viewport.
	YOffset float64
	// VisibleFraction is how much of the line's height is visible, in
	// (0, 1].
	VisibleFraction float64
	// ClipTop and ClipBottom are the heights cut off at each edge.
	ClipTop    float64
	ClipBottom float64
}

// Viewport tracks scroll position and layout metrics, and derives which
// lines intersect the visible area. All geometry is in pixels; scroll
// offsets are fractional so scrolling can stop mid-line.
type Viewport struct {
	scrollX, scrollY      float64
	width, height         float64
	charWidth, lineHeight float64

	firstLine, lastLine int
	partials            []PartialLineView
}

// NewViewport returns a viewport with the default size and text metrics.
func NewViewport() *Viewport {
	v := &Viewport{
		width:      800,
		height:     600,
		charWidth:  8,
		lineHeight: 18,
	}
	v.recompute()
	return v
}

// ScrollOffset returns the current scroll offset.
func (v *Viewport) ScrollOffset() (x, y float64) {
	return v.scrollX, v.scrollY
}

// Size returns the viewport dimensions.
func (v *Viewport) Size() (width, height float64) {
	return v.width, v.height
}

// LineHeight returns the configured line height.
func (v *Viewport) LineHeight() float64 {
	return v.lineHeight
}

// CharWidth returns the configured character cell width.
func (v *Viewport) CharWidth() float64 {
	return v.charWidth
}

// SetSize updates the viewport dimensions.
func (v *Viewport) SetSize(width, height float64) {
	v.width, v.height = width, height
	v.recompute()
}

// SetScrollOffset moves the viewport. Offsets are not clamped here;
// callers wanting bounds go through ClampScrollOffset or ScrollBy.
func (v *Viewport) SetScrollOffset(x, y float64) {
	v.scrollX, v.scrollY = x, y
	v.recompute()
}

// SetCharDimensions updates the text metrics.
func (v *Viewport) SetCharDimensions(charWidth, lineHeight float64) {
	v.charWidth, v.lineHeight = charWidth, lineHeight
	v.recompute()
}

// recompute derives the visible line range and per-line clipping from the
// current scroll and size.
func (v *Viewport) recompute() {
	v.firstLine = int(math.Floor(v.scrollY / v.lineHeight))
	v.lastLine = int(math.Ceil((v.scrollY + v.height) / v.lineHeight))

	v.partials = v.partials[:0]
	viewportTop := v.scrollY
	viewportBottom := v.scrollY + v.height

	for line := v.firstLine; line < v.lastLine; line++ {
		lineTop := float64(line) * v.lineHeight
		lineBottom := lineTop + v.lineHeight
		if lineBottom <= viewportTop || lineTop >= viewportBottom {
			continue
		}

		clipTop := 0.0
		if lineTop < viewportTop {
			clipTop = viewportTop - lineTop
		}
		clipBottom := 0.0
		if lineBottom > viewportBottom {
			clipBottom = lineBottom - viewportBottom
		}

		fraction := (v.lineHeight - clipTop - clipBottom) / v.lineHeight
		if fraction <= 0 {
			continue
		}
		v.partials = append(v.partials, PartialLineView{
			LineIndex:       line,
			YOffset:         lineTop - viewportTop,
			VisibleFraction: fraction,
			ClipTop:         clipTop,
			ClipBottom:      clipBottom,
		})
	}
}

// VisibleLines returns the inclusive range of line indexes intersecting
// the viewport.
func (v *Viewport) VisibleLines() (first, last int) {
	return v.firstLine, v.lastLine
}

// PartialLines returns the clipping info for every line with a positive
// visible fraction, in line order. The slice is reused across updates;
// callers must not retain it.
func (v *Viewport) PartialLines() []PartialLineView {
	return v.partials
}

// IsLineVisible reports whether a line intersects the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.firstLine && line <= v.lastLine
}

// IsPositionVisible reports whether a position is fully inside the
// viewport. The horizontal test assumes fixed-width cells and ignores
// tabs.
func (v *Viewport) IsPositionVisible(pos Position) bool {
	if !v.IsLineVisible(pos.Line) {
		return false
	}

	lineY := float64(pos.Line) * v.lineHeight
	columnX := float64(pos.Column) * v.charWidth

	return lineY >= v.scrollY &&
		lineY+v.lineHeight <= v.scrollY+v.height &&
		columnX >= v.scrollX &&
		columnX+v.charWidth <= v.scrollX+v.width
}

// ClampScrollOffset bounds an offset so the viewport never scrolls past
// the content. When the content fits, the vertical offset is 0.
func (v *Viewport) ClampScrollOffset(x, y float64, contentLines int) (float64, float64) {
	contentHeight := float64(contentLines) * v.lineHeight

	clampedX := math.Max(x, 0)
	clampedY := 0.0
	if contentHeight > v.height {
		clampedY = math.Min(math.Max(y, 0), contentHeight-v.height)
	}
	return clampedX, clampedY
}

// ScrollBy shifts the viewport by a delta, clamped to the content.
func (v *Viewport) ScrollBy(dx, dy float64, contentLines int) {
	x, y := v.ClampScrollOffset(v.scrollX+dx, v.scrollY+dy, contentLines)
	v.SetScrollOffset(x, y)
}

// ScrollToLine scrolls the smallest distance that brings a line fully
// into view.
func (v *Viewport) ScrollToLine(line int, contentLines int) {
	lineTop := float64(line) * v.lineHeight
	lineBottom := lineTop + v.lineHeight

	y := v.scrollY
	switch {
	case lineTop < v.scrollY:
		y = lineTop
	case lineBottom > v.scrollY+v.height:
		y = lineBottom - v.height
	}
	x, y := v.ClampScrollOffset(v.scrollX, y, contentLines)
	v.SetScrollOffset(x, y)
}
