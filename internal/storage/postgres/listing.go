package postgres

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// collection describes how one table exposes itself to list queries: which
// inbound field names are recognized and which column each maps to. Anything
// outside the map is silently dropped, so clients cannot reach arbitrary
// columns.
type collection struct {
	table       string
	fields      map[string]string
	defaultSort string
}

var sqlOps = map[repository.FilterOp]string{
	repository.OpEq:  "=",
	repository.OpNe:  "<>",
	repository.OpGt:  ">",
	repository.OpGte: ">=",
	repository.OpLt:  "<",
	repository.OpLte: "<=",
}

// buildListClauses renders WHERE/ORDER BY/LIMIT fragments plus positional
// args for a list query. argOffset allows callers that already bound
// parameters to continue the numbering.
func buildListClauses(c collection, q repository.ListQuery) (where string, args []any, tail string) {
	q = q.Normalize()

	var conds []string
	for _, f := range q.Filters {
		column, ok := c.fields[f.Field]
		if !ok {
			continue
		}
		op, ok := sqlOps[f.Op]
		if !ok {
			continue
		}
		args = append(args, coerceFilterValue(f.Value))
		conds = append(conds, fmt.Sprintf("%s %s $%d", column, op, len(args)))
	}
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var orders []string
	for _, s := range q.Sort {
		column, ok := c.fields[s.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		orders = append(orders, column+" "+dir)
	}
	if len(orders) == 0 {
		orders = []string{c.defaultSort}
	}

	tail = fmt.Sprintf(" ORDER BY %s LIMIT %d OFFSET %d", strings.Join(orders, ", "), q.Limit, q.Offset())
	return where, args, tail
}

// coerceFilterValue maps the textual query value onto a typed argument so
// comparisons against numeric, boolean, and timestamp columns do not fail on
// text parameters.
func coerceFilterValue(value string) any {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return value
}
