package pager

// PageState tracks which page of a fixed-size buffer is displayed.
type PageState struct {
	page  int
	size  int
	total int
}

// NewPageState starts at page 0. size is clamped to at least one line.
func NewPageState(size, total int) PageState {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	return PageState{size: size, total: total}
}

func (s PageState) Page() int  { return s.page }
func (s PageState) Size() int  { return s.size }
func (s PageState) Total() int { return s.total }

// HasNext reports whether at least one line exists past the current page.
func (s PageState) HasNext() bool {
	return (s.page+1)*s.size < s.total
}

// Advance moves one page forward unless the current page is the last one.
func (s *PageState) Advance() bool {
	if !s.HasNext() {
		return false
	}
	s.page++
	return true
}

// Retreat moves one page back unless already at page 0.
func (s *PageState) Retreat() bool {
	if s.page <= 0 {
		return false
	}
	s.page--
	return true
}

// Bounds returns the half-open line range of the current page.
func (s PageState) Bounds() (start, end int) {
	return View(s.total, s.page, s.size)
}

// View returns the half-open range [start, end) of lines shown on page for a
// buffer of total lines. The range is empty when page lies past the end.
func View(total, page, size int) (start, end int) {
	if size < 1 || page < 0 || total <= 0 {
		return 0, 0
	}
	start = page * size
	if start >= total {
		return total, total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}
