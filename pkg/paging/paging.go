// Package paging implements the pagination metadata contract shared by the
// product listing API: 1-based pages, a fixed page size, and prev/next flags
// derived from the total match count.
package paging

// DefaultPerPage is the page size used when the caller does not override it.
const DefaultPerPage = 10

// MaxPerPage bounds caller-supplied page sizes.
const MaxPerPage = 100

// Page describes one page of a result set.
type Page struct {
	// Number is the 1-based page number that was requested.
	Number int `json:"page"`
	// Total is the number of matches across all pages.
	Total int `json:"total"`
	// Pages is the number of pages needed to hold Total items. It is floored
	// to 1 so an empty result still reads "page 1 of 1".
	Pages   int  `json:"pages"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// New computes page metadata for a result set of total items split into
// perPage-sized pages, of which page number was requested. page and perPage
// must already be validated (>= 1); out-of-range pages are legal and simply
// yield HasNext == false.
func New(page, perPage, total int) Page {
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}

	return Page{
		Number:  page,
		Total:   total,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}

// Offset returns the row offset of the first item on the page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
