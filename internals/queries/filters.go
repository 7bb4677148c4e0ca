// Package queries holds the read side of the site: one family of functions
// per entity that composes conjunctive filters, orders, paginates and shapes
// rows into the dual-keyed public form. Controllers call these; they never
// build list queries themselves.
package queries

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"yayasanku_backend/internals/repository"
)

func eq(col string, v any) repository.Scope {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(col+" = ?", v)
	}
}

// searchAcross ORs a case-insensitive substring match over the entity's
// searchable text columns, as one conjunctive predicate.
func searchAcross(cols []string, term string) repository.Scope {
	return func(q *gorm.DB) *gorm.DB {
		needle := "%" + strings.TrimSpace(term) + "%"
		op := "LIKE" // sqlite LIKE is already case-insensitive for ASCII
		if q.Dialector.Name() == "postgres" {
			op = "ILIKE"
		}
		exprs := make([]string, 0, len(cols))
		args := make([]any, 0, len(cols))
		for _, c := range cols {
			exprs = append(exprs, c+" "+op+" ?")
			args = append(args, needle)
		}
		return q.Where("("+strings.Join(exprs, " OR ")+")", args...)
	}
}

// tagsOverlap matches rows whose stored tag-id array shares at least one
// element with ids (non-empty intersection, not subset). The JSON array
// operators differ per dialect, hence the switch.
func tagsOverlap(col string, ids []string) repository.Scope {
	return func(q *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return q
		}
		if q.Dialector.Name() == "postgres" {
			exprs := make([]string, 0, len(ids))
			args := make([]any, 0, len(ids))
			for _, id := range ids {
				one, _ := json.Marshal([]string{id})
				exprs = append(exprs, col+" @> ?::jsonb")
				args = append(args, string(one))
			}
			return q.Where("("+strings.Join(exprs, " OR ")+")", args...)
		}
		return q.Where(
			"EXISTS (SELECT 1 FROM json_each("+col+") WHERE json_each.value IN ?)", ids)
	}
}
