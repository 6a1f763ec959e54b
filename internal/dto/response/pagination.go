package response

import "tour-booking/pkg/utils"

// PaginatedResponse is the {data, totalPages} shape every listing
// endpoint returns. Total comes from an independent count query, so
// under concurrent writes data and totalPages can briefly disagree.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, total int64, limit int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data:       data,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}
}
