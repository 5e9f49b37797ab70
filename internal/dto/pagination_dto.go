package dto

// Pagination is a page of results. Total counts every row matching the
// filters, ignoring paging; Page is 1-based.
type Pagination[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
