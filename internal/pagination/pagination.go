// Package pagination provides the fixed-size page window used by every
// paginated listing. Page numbers are 1-based; the total count always refers
// to the filtered set before slicing, so out-of-range pages come back empty
// without changing the total.
package pagination

// Request identifies one page of a result set.
type Request struct {
	Number int
	Size   int
}

// NewRequest builds a Request, clamping the page number to a minimum of 1.
func NewRequest(number, size int) Request {
	if number < 1 {
		number = 1
	}
	return Request{Number: number, Size: size}
}

// Offset is the index of the first item on the page.
func (r Request) Offset() int {
	return (r.Number - 1) * r.Size
}

// Bounds intersects the page window with [0, total) for in-memory slicing.
// Out-of-range pages yield lo == hi.
func (r Request) Bounds(total int) (lo, hi int) {
	lo = r.Offset()
	if lo > total {
		lo = total
	}
	hi = lo + r.Size
	if hi > total {
		hi = total
	}
	return lo, hi
}
