package domain

import "fmt"

// PageRange is an inclusive page bound. Min and Max must be supplied
// together; Min == Max selects exactly one page.
type PageRange struct {
	Min int
	Max int
}

// Filter is a conjunctive metadata predicate narrowing retrieval to a
// subset of stored chunks. A nil *Filter means unfiltered retrieval.
// Filters restrict which candidates are eligible to rank; they never
// affect similarity ranking itself.
type Filter struct {
	// DocumentID, when non-empty, requires an exact document id match.
	DocumentID string

	// Tag, when non-empty, requires an exact tag match.
	Tag string

	// Pages, when non-nil, requires Min <= page <= Max.
	Pages *PageRange
}

// BuildFilter translates optional query constraints into a retrieval
// filter. Returns nil when no constraint is supplied. Page bounds must be
// given both-or-neither and in order, otherwise ErrInvalidInput.
func BuildFilter(documentID, tag string, pageMin, pageMax *int) (*Filter, error) {
	if (pageMin == nil) != (pageMax == nil) {
		return nil, fmt.Errorf("%w: page_min and page_max must be provided together", ErrInvalidInput)
	}

	f := &Filter{
		DocumentID: documentID,
		Tag:        tag,
	}

	if pageMin != nil {
		if *pageMin > *pageMax {
			return nil, fmt.Errorf("%w: page_min must be <= page_max", ErrInvalidInput)
		}
		f.Pages = &PageRange{Min: *pageMin, Max: *pageMax}
	}

	if f.DocumentID == "" && f.Tag == "" && f.Pages == nil {
		return nil, nil
	}
	return f, nil
}

// Matches reports whether a chunk satisfies every clause of the filter.
// A nil filter matches everything.
func (f *Filter) Matches(c Chunk) bool {
	if f == nil {
		return true
	}
	if f.DocumentID != "" && c.DocumentID != f.DocumentID {
		return false
	}
	if f.Tag != "" && c.Tag != f.Tag {
		return false
	}
	if f.Pages != nil && (c.Page < f.Pages.Min || c.Page > f.Pages.Max) {
		return false
	}
	return true
}
