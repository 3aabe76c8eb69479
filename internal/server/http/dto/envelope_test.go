package dto

import (
	"testing"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

func TestNewListResponsePagination(t *testing.T) {
	q := repository.ListQuery{Page: 2, Limit: 5}

	resp := NewListResponse([]string{"a"}, 1, 12, q)
	if resp.Pagination == nil {
		t.Fatal("expected pagination")
	}
	if resp.Pagination.Previous == nil || resp.Pagination.Previous.Page != 1 {
		t.Fatalf("unexpected previous: %+v", resp.Pagination.Previous)
	}
	if resp.Pagination.Next == nil || resp.Pagination.Next.Page != 3 {
		t.Fatalf("unexpected next: %+v", resp.Pagination.Next)
	}
}

func TestNewListResponseOmitsPagesPastData(t *testing.T) {
	first := NewListResponse(nil, 0, 3, repository.ListQuery{Page: 1, Limit: 5})
	if first.Pagination != nil {
		t.Fatalf("single page must have no pagination, got %+v", first.Pagination)
	}

	last := NewListResponse(nil, 0, 7, repository.ListQuery{Page: 2, Limit: 5})
	if last.Pagination == nil || last.Pagination.Next != nil {
		t.Fatalf("last page must omit next, got %+v", last.Pagination)
	}
	if last.Pagination.Previous == nil {
		t.Fatal("last page must keep previous")
	}

	past := NewListResponse(nil, 0, 3, repository.ListQuery{Page: 4, Limit: 5})
	if past.Pagination != nil {
		t.Fatalf("a page past the data must link nowhere, got %+v", past.Pagination)
	}
}

func TestProjectObject(t *testing.T) {
	type product struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Image string `json:"image"`
	}

	out := Project(product{Name: "Scone", Price: 150, Image: "/uploads/scone.jpg"}, []string{"name", "price"})
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", out)
	}
	if m["name"] != "Scone" || m["price"] != float64(150) {
		t.Fatalf("unexpected projection: %v", m)
	}
	if _, ok := m["image"]; ok {
		t.Fatalf("image must be dropped: %v", m)
	}
}

func TestProjectSlice(t *testing.T) {
	type product struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
	}

	out := Project([]product{{Name: "Scone", Price: 150}, {Name: "Bun", Price: 80}}, []string{"name"})
	list, ok := out.([]map[string]any)
	if !ok {
		t.Fatalf("expected slice of maps, got %T", out)
	}
	if len(list) != 2 || list[0]["name"] != "Scone" || list[1]["name"] != "Bun" {
		t.Fatalf("unexpected projection: %v", list)
	}
	if _, ok := list[0]["price"]; ok {
		t.Fatalf("price must be dropped: %v", list)
	}
}

func TestProjectWithoutFieldsPassesThrough(t *testing.T) {
	v := []string{"a", "b"}
	if out := Project(v, nil); out == nil {
		t.Fatal("nil projection must pass value through")
	}
}
