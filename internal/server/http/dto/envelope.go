package dto

import (
	"encoding/json"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// Response is the uniform success envelope.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Fields  any    `json:"fields,omitempty"`
}

// PageRef names an adjacent page of a list result.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries neighbouring page descriptors. Absent sides are omitted
// entirely, matching clients that probe with `if (pagination.next)`.
type Pagination struct {
	Previous *PageRef `json:"previous,omitempty"`
	Next     *PageRef `json:"next,omitempty"`
}

// ListResponse is the envelope for advanced list queries.
type ListResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Total      int64       `json:"total"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       any         `json:"data"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKCount wraps a slice in a success envelope with its length.
func OKCount(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// OKMessage wraps a bare confirmation message.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// NewListResponse builds the list envelope from the matched-row total and
// the originating query.
func NewListResponse(data any, count int, total int64, q repository.ListQuery) ListResponse {
	resp := ListResponse{
		Success: true,
		Count:   count,
		Total:   total,
		Data:    data,
	}
	p := repository.Paginate(total, q)
	if p.Previous != nil || p.Next != nil {
		resp.Pagination = &Pagination{}
		if p.Previous != nil {
			resp.Pagination.Previous = &PageRef{Page: p.Previous.Page, Limit: p.Previous.Limit}
		}
		if p.Next != nil {
			resp.Pagination.Next = &PageRef{Page: p.Next.Page, Limit: p.Next.Limit}
		}
	}
	return resp
}

// Project reduces v to the requested JSON fields. Serialization-side
// projection keeps SQL reads full-row; unknown fields simply vanish from the
// output. With no fields requested, v passes through untouched.
func Project(v any, fields []string) any {
	if len(fields) == 0 {
		return v
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	keep := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		keep[f] = struct{}{}
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err == nil {
		return projectMap(full, keep)
	}
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		return v
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		out = append(out, projectMap(item, keep))
	}
	return out
}

func projectMap(m map[string]any, keep map[string]struct{}) map[string]any {
	out := make(map[string]any, len(keep))
	for k := range keep {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}
