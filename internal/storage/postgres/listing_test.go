package postgres

import (
	"testing"
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

var testCollection = collection{
	table: "products",
	fields: map[string]string{
		"name":      "name",
		"price":     "price",
		"createdAt": "created_at",
	},
	defaultSort: "created_at DESC",
}

func TestBuildListClausesFiltersAndSort(t *testing.T) {
	q := repository.ListQuery{
		Filters: []repository.Filter{
			{Field: "price", Op: repository.OpGte, Value: "10"},
			{Field: "price", Op: repository.OpLte, Value: "50"},
		},
		Sort:  []repository.SortField{{Field: "createdAt", Desc: true}},
		Page:  2,
		Limit: 5,
	}

	where, args, tail := buildListClauses(testCollection, q)

	if where != " WHERE price >= $1 AND price <= $2" {
		t.Fatalf("unexpected where: %q", where)
	}
	if len(args) != 2 || args[0] != float64(10) || args[1] != float64(50) {
		t.Fatalf("unexpected args: %v", args)
	}
	if tail != " ORDER BY created_at DESC LIMIT 5 OFFSET 5" {
		t.Fatalf("unexpected tail: %q", tail)
	}
}

func TestBuildListClausesDropsUnknownFields(t *testing.T) {
	q := repository.ListQuery{
		Filters: []repository.Filter{
			{Field: "passwordHash", Op: repository.OpEq, Value: "x"},
		},
		Sort: []repository.SortField{{Field: "secret"}},
	}

	where, args, tail := buildListClauses(testCollection, q)

	if where != "" || len(args) != 0 {
		t.Fatalf("unmapped filter must be dropped: %q %v", where, args)
	}
	if tail != " ORDER BY created_at DESC LIMIT 25 OFFSET 0" {
		t.Fatalf("unexpected tail: %q", tail)
	}
}

func TestCoerceFilterValue(t *testing.T) {
	if v := coerceFilterValue("12.5"); v != float64(12.5) {
		t.Fatalf("expected float, got %T %v", v, v)
	}
	if v := coerceFilterValue("true"); v != true {
		t.Fatalf("expected bool, got %T %v", v, v)
	}
	if v, ok := coerceFilterValue("2025-06-01").(time.Time); !ok || v.Year() != 2025 {
		t.Fatalf("expected time, got %T %v", v, v)
	}
	if v := coerceFilterValue("cakes"); v != "cakes" {
		t.Fatalf("expected string, got %T %v", v, v)
	}
}
