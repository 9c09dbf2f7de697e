package domain

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest carries explicit paging and sorting parameters so the query
// layer never sees raw, unvalidated request values.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	SortDir   string
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

func (p PageRequest) Limit() int {
	return p.Size
}

// Page is a bounded slice of a result set plus total-count metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
