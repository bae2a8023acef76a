// Package query turns filter, search, ordering and pagination request
// parameters into gorm scopes, driven by a static capability table per
// resource.
package query

type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindDecimal
	KindDateTime
)

type Lookup string

const (
	Exact Lookup = "exact"
	Gte   Lookup = "gte"
	Lte   Lookup = "lte"
	Date  Lookup = "date"
)

// Filter declares a structured filter. Exact lookups are read from the bare
// parameter name, the others from "<param>__<lookup>".
type Filter struct {
	Param   string
	Column  string
	Kind    Kind
	Lookups []Lookup
}

func (f Filter) allows(l Lookup) bool {
	for _, x := range f.Lookups {
		if x == l {
			return true
		}
	}
	return false
}

type OrderTerm struct {
	Column string
	Desc   bool
}

func (o OrderTerm) SQL() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Resource is the capability table of one exposed collection.
type Resource struct {
	Name  string
	Table string
	// Path is the collection segment under /api.
	Path string

	Filters []Filter

	// Search lists column expressions matched case-insensitively.
	// SearchJoins must make every aliased column reachable.
	Search      []string
	SearchJoins []string

	// Sortable maps the public ordering name to a column.
	Sortable     map[string]string
	DefaultOrder []OrderTerm

	// Preloads are the relations resolved in batch for every read.
	Preloads []string
}

func (r *Resource) idColumn() string {
	return r.Table + ".id"
}

var Accounts = &Resource{
	Name:  "account",
	Table: "accounts",
	Path:  "accounts",
	Filters: []Filter{
		{Param: "is_active", Column: "accounts.is_active", Kind: KindBool, Lookups: []Lookup{Exact}},
		{Param: "email", Column: "accounts.email", Kind: KindString, Lookups: []Lookup{Exact}},
	},
	Search: []string{"accounts.username", "accounts.email", "accounts.first_name", "accounts.last_name"},
	Sortable: map[string]string{
		"id":          "accounts.id",
		"date_joined": "accounts.date_joined",
		"username":    "accounts.username",
	},
	DefaultOrder: []OrderTerm{{Column: "accounts.id"}},
}

var Profiles = &Resource{
	Name:  "profile",
	Table: "profiles",
	Path:  "profiles",
	Filters: []Filter{
		{Param: "user", Column: "profiles.account_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "role", Column: "profiles.role", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "active", Column: "profiles.active", Kind: KindBool, Lookups: []Lookup{Exact}},
	},
	Search:      []string{"profile_account.username", "profiles.phone_number"},
	SearchJoins: []string{"LEFT JOIN accounts AS profile_account ON profile_account.id = profiles.account_id"},
	Sortable: map[string]string{
		"created_at": "profiles.created_at",
		"id":         "profiles.id",
	},
	DefaultOrder: []OrderTerm{{Column: "profiles.created_at", Desc: true}},
	Preloads:     []string{"Account"},
}

var Services = &Resource{
	Name:  "service",
	Table: "services",
	Path:  "services",
	Filters: []Filter{
		{Param: "active", Column: "services.active", Kind: KindBool, Lookups: []Lookup{Exact}},
		{Param: "price", Column: "services.price", Kind: KindDecimal, Lookups: []Lookup{Gte, Lte}},
	},
	Search: []string{"services.name", "services.description"},
	Sortable: map[string]string{
		"name":  "services.name",
		"price": "services.price",
		"id":    "services.id",
	},
	DefaultOrder: []OrderTerm{{Column: "services.name"}},
}

var Schedules = &Resource{
	Name:  "schedule",
	Table: "schedules",
	Path:  "schedules",
	Filters: []Filter{
		{Param: "barber", Column: "schedules.barber_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "day_of_week", Column: "schedules.day_of_week", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "active", Column: "schedules.active", Kind: KindBool, Lookups: []Lookup{Exact}},
	},
	Search:      []string{"schedule_barber.username"},
	SearchJoins: []string{"LEFT JOIN accounts AS schedule_barber ON schedule_barber.id = schedules.barber_id"},
	Sortable: map[string]string{
		"day_of_week": "schedules.day_of_week",
		"start_time":  "schedules.start_time",
		"end_time":    "schedules.end_time",
		"id":          "schedules.id",
	},
	DefaultOrder: []OrderTerm{
		{Column: "schedules.barber_id"},
		{Column: "schedules.day_of_week"},
		{Column: "schedules.start_time"},
	},
	Preloads: []string{"Barber"},
}

var Appointments = &Resource{
	Name:  "appointment",
	Table: "appointments",
	Path:  "appointments",
	Filters: []Filter{
		{Param: "client", Column: "appointments.client_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "barber", Column: "appointments.barber_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "status", Column: "appointments.status", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "active", Column: "appointments.active", Kind: KindBool, Lookups: []Lookup{Exact}},
		{Param: "appointment_datetime", Column: "appointments.appointment_datetime", Kind: KindDateTime, Lookups: []Lookup{Date, Gte, Lte}},
	},
	Search: []string{"appointments.notes", "client_account.username", "barber_account.username"},
	SearchJoins: []string{
		"LEFT JOIN accounts AS client_account ON client_account.id = appointments.client_id",
		"LEFT JOIN accounts AS barber_account ON barber_account.id = appointments.barber_id",
	},
	Sortable: map[string]string{
		"appointment_datetime": "appointments.appointment_datetime",
		"duration_minutes":     "appointments.duration_minutes",
		"id":                   "appointments.id",
	},
	DefaultOrder: []OrderTerm{{Column: "appointments.appointment_datetime", Desc: true}},
	Preloads:     []string{"Client", "Barber", "Ratings", "Payments", "CalendarEvents"},
}

var Ratings = &Resource{
	Name:  "rating",
	Table: "ratings",
	Path:  "ratings",
	Filters: []Filter{
		{Param: "appointment", Column: "ratings.appointment_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "user", Column: "ratings.user_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "score", Column: "ratings.score", Kind: KindInt, Lookups: []Lookup{Exact, Gte, Lte}},
	},
	Search:      []string{"ratings.comment", "rating_user.username"},
	SearchJoins: []string{"LEFT JOIN accounts AS rating_user ON rating_user.id = ratings.user_id"},
	Sortable: map[string]string{
		"created_at": "ratings.created_at",
		"score":      "ratings.score",
		"id":         "ratings.id",
	},
	DefaultOrder: []OrderTerm{{Column: "ratings.created_at", Desc: true}},
	Preloads:     []string{"User"},
}

var Payments = &Resource{
	Name:  "payment",
	Table: "payments",
	Path:  "payments",
	Filters: []Filter{
		{Param: "appointment", Column: "payments.appointment_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "status", Column: "payments.status", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "provider", Column: "payments.provider", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "amount", Column: "payments.amount", Kind: KindDecimal, Lookups: []Lookup{Gte, Lte}},
	},
	Search: []string{"payments.provider"},
	Sortable: map[string]string{
		"id":      "payments.id",
		"amount":  "payments.amount",
		"paid_at": "payments.paid_at",
	},
	DefaultOrder: []OrderTerm{{Column: "payments.id", Desc: true}},
}

var CalendarEvents = &Resource{
	Name:  "calendar_event",
	Table: "calendar_events",
	Path:  "calendar-events",
	Filters: []Filter{
		{Param: "appointment", Column: "calendar_events.appointment_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "provider", Column: "calendar_events.provider", Kind: KindString, Lookups: []Lookup{Exact}},
	},
	Search: []string{"calendar_events.external_event_id", "calendar_events.provider"},
	Sortable: map[string]string{
		"id":        "calendar_events.id",
		"synced_at": "calendar_events.synced_at",
	},
	DefaultOrder: []OrderTerm{{Column: "calendar_events.id", Desc: true}},
}

// AuditLogs backs the audit trail listing; it is not a public resource.
var AuditLogs = &Resource{
	Name:  "audit_log",
	Table: "audit_logs",
	Path:  "audit-logs",
	Filters: []Filter{
		{Param: "action", Column: "audit_logs.action", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "entity", Column: "audit_logs.entity", Kind: KindString, Lookups: []Lookup{Exact}},
		{Param: "account", Column: "audit_logs.account_id", Kind: KindInt, Lookups: []Lookup{Exact}},
		{Param: "created_at", Column: "audit_logs.created_at", Kind: KindDateTime, Lookups: []Lookup{Date, Gte, Lte}},
	},
	Sortable: map[string]string{
		"id":         "audit_logs.id",
		"created_at": "audit_logs.created_at",
	},
	DefaultOrder: []OrderTerm{{Column: "audit_logs.created_at", Desc: true}},
}

// All lists the exposed resources in routing order.
var All = []*Resource{Accounts, Profiles, Services, Schedules, Appointments, Ratings, Payments, CalendarEvents}
