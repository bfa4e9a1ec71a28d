package pagination

// Meta describes the window returned by a paginated command.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta builds page metadata for totalCount items. Without a limit the
// whole result is a single page.
func NewMeta(p Params, totalCount int) Meta {
	offset, size := p.OffsetLimit()
	if size == 0 {
		size = totalCount
	}

	m := Meta{PageSize: size, TotalItems: totalCount, CurrentPage: 1}
	if size > 0 {
		m.TotalPages = (totalCount + size - 1) / size
		m.CurrentPage = offset/size + 1
	}
	m.HasPrevious = m.CurrentPage > 1
	m.HasNext = m.CurrentPage < m.TotalPages
	return m
}
