// Package query turns URL query strings into bounded list queries.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// Reserved parameter names never treated as field filters.
var reserved = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// Parse reads filters, projection, sort and pagination from raw query
// values. Parsing is lenient: malformed numbers fall back to defaults and
// unknown operators drop the filter rather than failing the request. Field
// allow-listing happens later, in the storage layer.
func Parse(values url.Values) repository.ListQuery {
	q := repository.ListQuery{
		Page:  repository.DefaultPage,
		Limit: repository.DefaultLimit,
	}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if _, ok := reserved[key]; ok {
			continue
		}
		field, op, ok := splitOperator(key)
		if !ok {
			continue
		}
		for _, v := range vals {
			q.Filters = append(q.Filters, repository.Filter{Field: field, Op: op, Value: v})
		}
	}

	if sel := values.Get("select"); sel != "" {
		for _, f := range strings.Split(sel, ",") {
			if f = strings.TrimSpace(f); f != "" {
				q.Select = append(q.Select, f)
			}
		}
	}

	if sort := values.Get("sort"); sort != "" {
		for _, f := range strings.Split(sort, ",") {
			f = strings.TrimSpace(f)
			if f == "" || f == "-" {
				continue
			}
			if strings.HasPrefix(f, "-") {
				q.Sort = append(q.Sort, repository.SortField{Field: f[1:], Desc: true})
			} else {
				q.Sort = append(q.Sort, repository.SortField{Field: f})
			}
		}
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}

	return q
}

// splitOperator decomposes `field[op]` keys. A bare field means equality;
// an unrecognized operator rejects the key.
func splitOperator(key string) (string, repository.FilterOp, bool) {
	open := strings.Index(key, "[")
	if open < 0 {
		if key == "" {
			return "", "", false
		}
		return key, repository.OpEq, true
	}
	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", "", false
	}
	field := key[:open]
	op := repository.FilterOp(key[open+1 : len(key)-1])
	if !repository.ValidFilterOp(op) {
		return "", "", false
	}
	return field, op, true
}
