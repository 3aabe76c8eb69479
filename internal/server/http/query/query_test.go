package query

import (
	"net/url"
	"testing"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

func TestParseFiltersSortAndPagination(t *testing.T) {
	values, err := url.ParseQuery("price[gte]=10&price[lte]=50&sort=-createdAt&page=2&limit=5")
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}

	q := Parse(values)

	if len(q.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %+v", q.Filters)
	}
	found := map[repository.FilterOp]string{}
	for _, f := range q.Filters {
		if f.Field != "price" {
			t.Fatalf("unexpected filter field %q", f.Field)
		}
		found[f.Op] = f.Value
	}
	if found[repository.OpGte] != "10" || found[repository.OpLte] != "50" {
		t.Fatalf("unexpected filter values: %v", found)
	}

	if len(q.Sort) != 1 || q.Sort[0].Field != "createdAt" || !q.Sort[0].Desc {
		t.Fatalf("unexpected sort: %+v", q.Sort)
	}
	if q.Page != 2 || q.Limit != 5 {
		t.Fatalf("unexpected pagination: page=%d limit=%d", q.Page, q.Limit)
	}
}

func TestParseBareFieldMeansEquality(t *testing.T) {
	q := Parse(url.Values{"category": {"cakes"}})

	if len(q.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %+v", q.Filters)
	}
	f := q.Filters[0]
	if f.Field != "category" || f.Op != repository.OpEq || f.Value != "cakes" {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestParseDropsUnknownOperators(t *testing.T) {
	q := Parse(url.Values{
		"price[like]": {"10"},
		"price[":      {"10"},
		"[gte]":       {"10"},
	})

	if len(q.Filters) != 0 {
		t.Fatalf("malformed keys must be dropped, got %+v", q.Filters)
	}
}

func TestParseDefaults(t *testing.T) {
	q := Parse(url.Values{})

	if q.Page != repository.DefaultPage || q.Limit != repository.DefaultLimit {
		t.Fatalf("unexpected defaults: page=%d limit=%d", q.Page, q.Limit)
	}
	if len(q.Filters) != 0 || len(q.Sort) != 0 || len(q.Select) != 0 {
		t.Fatalf("expected empty query, got %+v", q)
	}

	q = Parse(url.Values{"page": {"abc"}, "limit": {"-3"}})
	if q.Page != repository.DefaultPage || q.Limit != repository.DefaultLimit {
		t.Fatalf("malformed pagination must fall back, got page=%d limit=%d", q.Page, q.Limit)
	}
}

func TestParseSelectList(t *testing.T) {
	q := Parse(url.Values{"select": {"name, price,"}})

	if len(q.Select) != 2 || q.Select[0] != "name" || q.Select[1] != "price" {
		t.Fatalf("unexpected select: %+v", q.Select)
	}
}
