package pgstore

import (
	"fmt"
	"strings"

	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/pkg/errs"
)

// query accumulates positional arguments while a formula is compiled
type query struct {
	args []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *query) key(field string) string {
	return q.arg(field) + "::text"
}

// textExpr renders a field as the joined text the hosted store uses in formulas
func (q *query) textExpr(field string) string {
	f := q.key(field)
	return fmt.Sprintf(
		"COALESCE(CASE WHEN jsonb_typeof(fields->%[1]s) = 'array' "+
			"THEN (SELECT string_agg(e, ', ') FROM jsonb_array_elements_text(fields->%[1]s) AS e) "+
			"ELSE fields->>%[1]s END, '')",
		f,
	)
}

func (q *query) where(f recordstore.Formula) (string, error) {
	switch t := f.(type) {
	case nil:
		return "TRUE", nil
	case recordstore.EqFormula:
		return q.textExpr(t.Field) + " = " + q.arg(t.Value), nil
	case recordstore.ContainsFormula:
		return "strpos(" + q.textExpr(t.Field) + ", " + q.arg(t.Value) + ") > 0", nil
	case recordstore.HasFormula:
		f := q.key(t.Field)
		v := q.arg(t.Value)
		return fmt.Sprintf("(fields->%[1]s @> jsonb_build_array(%[2]s::text) OR fields->>%[1]s = %[2]s)", f, v), nil
	case recordstore.AndFormula:
		if len(t.Terms) == 0 {
			return "TRUE", nil
		}
		parts := make([]string, 0, len(t.Terms))
		for _, term := range t.Terms {
			p, err := q.where(term)
			if err != nil {
				return "", err
			}
			parts = append(parts, p)
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil
	default:
		return "", errs.Newf("unsupported formula %T", f)
	}
}

func (q *query) orderBy(sorts []recordstore.Sort) string {
	parts := make([]string, 0, len(sorts)+1)
	for _, s := range sorts {
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		parts = append(parts, q.textExpr(s.Field)+" "+dir)
	}
	parts = append(parts, "seq ASC")
	return strings.Join(parts, ", ")
}

func buildSelect(table string, opts recordstore.SelectOptions) (string, []any, error) {
	q := &query{}
	t := q.arg(table)
	cond, err := q.where(opts.Filter)
	if err != nil {
		return "", nil, err
	}

	sql := "SELECT id, fields, created_at FROM records WHERE table_name = " + t +
		" AND " + cond +
		" ORDER BY " + q.orderBy(opts.Sort)
	if opts.MaxRecords > 0 {
		sql += " LIMIT " + q.arg(opts.MaxRecords)
	}
	return sql, q.args, nil
}
