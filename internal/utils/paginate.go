package utils

// PageInfo describes one page of a collection listing.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items for the requested page. page and limit are
// assumed already clamped by the caller (page >= 1, 1 <= limit <= 100).
func Paginate[T any](items []T, page, limit int) ([]T, PageInfo) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
