package compression

import "fmt"

// PageRange is an immutable 1-based inclusive page interval.
type PageRange struct {
	start int
	end   int
}

// NewPageRange validates at construction time; an invalid range never
// circulates.
func NewPageRange(start, end int) (PageRange, error) {
	if start < 1 {
		return PageRange{}, fmt.Errorf("page range start %d must be at least 1", start)
	}
	if end < start {
		return PageRange{}, fmt.Errorf("page range end %d is before start %d", end, start)
	}
	return PageRange{start: start, end: end}, nil
}

func (r PageRange) Start() int {
	return r.start
}

func (r PageRange) End() int {
	return r.end
}

// PageCount returns the number of pages the range spans.
func (r PageRange) PageCount() int {
	return r.end - r.start + 1
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.start, r.end)
}
