package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

// Condition is a single comparison produced by a structured filter.
type Condition struct {
	Column string
	Op     string
	Value  any
}

// Query is the resolved read request for one resource.
type Query struct {
	Resource   *Resource
	Conditions []Condition
	Terms      []string
	Order      []OrderTerm
}

// Parse reads structured filters, the search parameter and the ordering
// parameter. Unknown parameters and ordering names are ignored; malformed
// filter values are reported together as a validation error.
func Parse(r *Resource, values url.Values, loc *time.Location) (Query, error) {
	if loc == nil {
		loc = time.UTC
	}

	q := Query{Resource: r}
	verr := apperr.NewValidation()

	for _, f := range r.Filters {
		for _, l := range f.Lookups {
			name := f.Param
			if l != Exact {
				name += "__" + string(l)
			}

			raw := strings.TrimSpace(values.Get(name))
			if raw == "" {
				continue
			}

			conds, msg := f.conditions(l, raw, loc)
			if msg != "" {
				verr.Add(name, msg)
				continue
			}
			q.Conditions = append(q.Conditions, conds...)
		}
	}

	q.Terms = SearchTerms(values.Get("search"))
	q.Order = r.ordering(values.Get("ordering"))

	return q, verr.Err()
}

// SearchTerms splits a search value on whitespace and commas.
func SearchTerms(raw string) []string {
	raw = strings.ReplaceAll(raw, "\x00", "")
	raw = strings.ReplaceAll(raw, ",", " ")

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

func (r *Resource) ordering(raw string) []OrderTerm {
	var terms []OrderTerm
	seen := map[string]bool{}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		col, ok := r.Sortable[strings.TrimPrefix(part, "-")]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		terms = append(terms, OrderTerm{Column: col, Desc: desc})
	}

	if len(terms) == 0 {
		terms = append(terms, r.DefaultOrder...)
	}

	// id breaks ties so that pages never overlap
	for _, t := range terms {
		if t.Column == r.idColumn() {
			return terms
		}
	}
	return append(terms, OrderTerm{Column: r.idColumn()})
}

func (f Filter) conditions(l Lookup, raw string, loc *time.Location) ([]Condition, string) {
	if l == Date {
		day, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return nil, "Enter a valid date."
		}
		return []Condition{
			{Column: f.Column, Op: ">=", Value: day},
			{Column: f.Column, Op: "<", Value: day.AddDate(0, 0, 1)},
		}, ""
	}

	value, msg := parseValue(f.Kind, raw, loc)
	if msg != "" {
		return nil, msg
	}

	op := "="
	switch l {
	case Gte:
		op = ">="
	case Lte:
		op = "<="
	}

	return []Condition{{Column: f.Column, Op: op, Value: value}}, ""
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseValue(kind Kind, raw string, loc *time.Location) (any, string) {
	switch kind {
	case KindInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "Enter a whole number."
		}
		return v, ""

	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, "Enter true or false."
		}
		return v, ""

	case KindDecimal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, "Enter a number."
		}
		return v, ""

	case KindDateTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, ""
		}
		for _, layout := range dateTimeLayouts {
			if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
				return t, ""
			}
		}
		return nil, "Enter a valid date/time."

	default:
		return raw, ""
	}
}
