package atlas

// shelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left-to-right on horizontal shelves. A shelf is as
// tall as the tallest item placed on it; when no shelf has room a new one is
// opened below the last.
type shelfAllocator struct {
	size    int // width = height of the page
	padding int
	shelves []shelf

	usedArea int
}

// shelf represents a horizontal strip in the page.
type shelf struct {
	y      int // top of the shelf
	height int // tallest item so far
	x      int // next free slot
}

func newShelfAllocator(size, padding int) *shelfAllocator {
	return &shelfAllocator{
		size:    size,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate finds space for a w x h rectangle.
// Returns -1, -1, false if the page has no room.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.size {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow, and only into free space below.
			if i != len(a.shelves)-1 || s.y+paddedH > a.size {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height + a.padding
	}
	if newY+paddedH > a.size || paddedW > a.size {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

// fits reports whether a w x h rectangle fits on an empty page.
func (a *shelfAllocator) fits(w, h int) bool {
	return w+a.padding <= a.size && h+a.padding <= a.size
}

// utilization returns the fraction of page area used (0.0 to 1.0).
func (a *shelfAllocator) utilization() float64 {
	if a.size <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.size*a.size)
}
