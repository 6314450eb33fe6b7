package usecase

// Page is one slice of an ordered listing plus the collection totals.
type Page[T any] struct {
	Items      []T
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

func newPage[T any](items []T, totalCount, page, pageSize int) Page[T] {
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, pageSize),
		Page:       page,
		PageSize:   pageSize,
	}
}

// totalPages is ceil(totalCount / pageSize); an empty result set has zero pages.
func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
