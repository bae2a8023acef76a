package query

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter applies joins, structured conditions and search. It leaves the
// projection and ordering untouched so the same scope serves counting.
func (q Query) Filter(db *gorm.DB) *gorm.DB {
	r := q.Resource

	if len(q.Terms) > 0 && len(r.Search) > 0 {
		for _, j := range r.SearchJoins {
			db = db.Joins(j)
		}
	}

	for _, c := range q.Conditions {
		db = db.Where(c.Column+" "+c.Op+" ?", c.Value)
	}

	if len(r.Search) == 0 {
		return db
	}

	for _, term := range q.Terms {
		like := "%" + likeEscaper.Replace(term) + "%"

		clauses := make([]string, len(r.Search))
		args := make([]any, len(r.Search))
		for i, col := range r.Search {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}

		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	return db
}

// Sort projects the resource's own columns and applies the ordering.
func (q Query) Sort(db *gorm.DB) *gorm.DB {
	db = db.Select(q.Resource.Table + ".*")
	for _, o := range q.Order {
		db = db.Order(o.SQL())
	}
	return db
}

// Preload resolves the declared relations of r in batch.
func Preload(r *Resource) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range r.Preloads {
			db = db.Preload(p)
		}
		return db
	}
}
