package response

import "gestao_os/internal/usecase"

type PagedResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

func FromPage[E any, T any](page usecase.Page[E], mapItem func(E) T) PagedResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, mapItem(e))
	}
	return PagedResponse[T]{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
