package repository

import "gorm.io/gorm"

// Scope adds one conjunctive predicate (or join) to a list query.
type Scope func(*gorm.DB) *gorm.DB

// ListOptions mirrors the knobs every list endpoint exposes. OrderBy must come
// from a call-site whitelist, never from raw user input.
type ListOptions struct {
	Limit   int
	Offset  int
	OrderBy string
	Scopes  []Scope
}

func (o ListOptions) apply(db *gorm.DB) *gorm.DB {
	q := db
	for _, s := range o.Scopes {
		q = s(q)
	}
	if o.OrderBy != "" {
		q = q.Order(o.OrderBy)
	}
	if o.Limit > 0 {
		q = q.Limit(o.Limit)
	}
	if o.Offset > 0 {
		q = q.Offset(o.Offset)
	}
	return q
}
