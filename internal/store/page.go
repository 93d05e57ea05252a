package store

// PageQuery carries pagination and sorting for listing queries.
// Page is zero-based; the HTTP layer converts from the 1-based request.
type PageQuery struct {
	Page   int
	Size   int
	SortBy string
	Asc    bool
}

const defaultPageSize = 10

func (q PageQuery) Limit() int {
	if q.Size <= 0 {
		return defaultPageSize
	}
	return q.Size
}

func (q PageQuery) Offset() int {
	if q.Page <= 0 {
		return 0
	}
	return q.Page * q.Limit()
}

func (q PageQuery) Direction() string {
	if q.Asc {
		return "ASC"
	}
	return "DESC"
}
