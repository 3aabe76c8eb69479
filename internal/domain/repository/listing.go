package repository

// FilterOp is a comparison operator recognized by list endpoints.
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpNe  FilterOp = "ne"
	OpGt  FilterOp = "gt"
	OpGte FilterOp = "gte"
	OpLt  FilterOp = "lt"
	OpLte FilterOp = "lte"
)

// ValidFilterOp reports whether op is part of the supported operator set.
func ValidFilterOp(op FilterOp) bool {
	switch op {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// Filter is a single field comparison.
type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

// SortField orders results by one field.
type SortField struct {
	Field string
	Desc  bool
}

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// ListQuery is a bounded filter/sort/pagination request against one
// collection. Fields outside the target collection's allow-list are ignored
// by the storage layer.
type ListQuery struct {
	Filters []Filter
	Sort    []SortField
	Select  []string
	Page    int
	Limit   int
}

// Normalize replaces out-of-range pagination values with defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Offset converts page/limit into a row offset.
func (q ListQuery) Offset() int {
	n := q.Normalize()
	return (n.Page - 1) * n.Limit
}

// PageRef points at an adjacent result page.
type PageRef struct {
	Page  int
	Limit int
}

// Pagination describes neighbouring pages that would be non-empty.
type Pagination struct {
	Previous *PageRef
	Next     *PageRef
}

// Paginate computes previous/next descriptors from the matched-row count,
// without running a speculative extra query. A descriptor is present only
// when the page it points at contains data.
func Paginate(total int64, q ListQuery) Pagination {
	n := q.Normalize()
	var p Pagination
	if n.Page > 1 && int64((n.Page-2)*n.Limit) < total {
		p.Previous = &PageRef{Page: n.Page - 1, Limit: n.Limit}
	}
	if int64(n.Page*n.Limit) < total {
		p.Next = &PageRef{Page: n.Page + 1, Limit: n.Limit}
	}
	return p
}
