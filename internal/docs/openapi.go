// Package docs builds the Swagger 2.0 document of the REST surface from the
// query capability tables and registers it with swag for the swagger UI.
package docs

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/spec"
	"github.com/swaggo/swag"

	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

const securityName = "bearer"

// Entry describes how one resource is exposed.
type Entry struct {
	Resource *query.Resource
	ReadOnly bool
	// Protected marks reads that also need a token.
	Protected bool
}

// Build assembles the document. Collection and item routes come from the
// entries; the auth, lifecycle, availability and sync routes are fixed.
func Build(version string, entries []Entry) *spec.Swagger {
	paths := map[string]spec.PathItem{}

	for _, e := range entries {
		collection, item := resourcePaths(e)
		paths["/"+e.Resource.Path] = collection
		paths["/"+e.Resource.Path+"/{id}"] = item
	}

	for path, item := range actionPaths() {
		paths[path] = item
	}

	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:  "2.0",
			BasePath: "/api",
			Schemes:  []string{"http", "https"},
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Info: &spec.Info{InfoProps: spec.InfoProps{
				Title:       "Barbershop API",
				Description: "Accounts, services, schedules, appointments, ratings, payments and calendar sync.",
				Version:     version,
			}},
			SecurityDefinitions: spec.SecurityDefinitions{
				securityName: spec.APIKeyAuth("Authorization", "header"),
			},
			Paths: &spec.Paths{Paths: paths},
		},
	}
}

func resourcePaths(e Entry) (spec.PathItem, spec.PathItem) {
	r := e.Resource
	tag := r.Path

	list := spec.NewOperation("list_"+r.Name).
		WithTags(tag).
		WithSummary("List " + r.Path).
		RespondsWith(http.StatusOK, response("paginated list")).
		RespondsWith(http.StatusBadRequest, response("malformed filter or page"))
	for _, p := range listParams(r) {
		list.AddParam(p)
	}

	get := spec.NewOperation("get_"+r.Name).
		WithTags(tag).
		AddParam(idParam()).
		RespondsWith(http.StatusOK, response(r.Name)).
		RespondsWith(http.StatusNotFound, response("unknown id"))

	if e.Protected {
		list.SecuredWith(securityName)
		get.SecuredWith(securityName)
	}

	collection := spec.PathItem{PathItemProps: spec.PathItemProps{Get: list}}
	item := spec.PathItem{PathItemProps: spec.PathItemProps{Get: get}}

	if e.ReadOnly {
		return collection, item
	}

	collection.Post = write("create_"+r.Name, tag, http.StatusCreated).
		AddParam(bodyParam())

	item.Put = write("replace_"+r.Name, tag, http.StatusOK).
		WithDescription("Every required field must be present.").
		AddParam(idParam()).
		AddParam(bodyParam())
	item.Patch = write("update_"+r.Name, tag, http.StatusOK).
		AddParam(idParam()).
		AddParam(bodyParam())
	item.Delete = spec.NewOperation("delete_"+r.Name).
		WithTags(tag).
		SecuredWith(securityName).
		AddParam(idParam()).
		RespondsWith(http.StatusNoContent, response("removed")).
		RespondsWith(http.StatusNotFound, response("unknown id"))

	return collection, item
}

func listParams(r *query.Resource) []*spec.Parameter {
	var params []*spec.Parameter

	for _, f := range r.Filters {
		for _, l := range f.Lookups {
			name := f.Param
			typ, format := paramType(f.Kind)
			switch l {
			case query.Exact:
			case query.Date:
				name += "__date"
				typ, format = "string", "date"
			default:
				name += "__" + string(l)
			}
			params = append(params, spec.QueryParam(name).Typed(typ, format))
		}
	}

	if len(r.Search) > 0 {
		params = append(params, spec.QueryParam("search").Typed("string", "").
			WithDescription("Terms separated by spaces or commas; every term must match."))
	}

	if len(r.Sortable) > 0 {
		var names []any
		for _, name := range sortedKeys(r.Sortable) {
			names = append(names, name, "-"+name)
		}
		params = append(params, spec.QueryParam("ordering").Typed("string", "").WithEnum(names...))
	}

	params = append(params,
		spec.QueryParam("page").Typed("integer", "int32"),
		spec.QueryParam("page_size").Typed("integer", "int32"),
	)
	return params
}

func actionPaths() map[string]spec.PathItem {
	action := func(id, tag, summary string) *spec.Operation {
		return write(id, tag, http.StatusOK).WithSummary(summary).AddParam(idParam())
	}

	register := spec.NewOperation("register").WithTags("auth").
		AddParam(bodyParam()).
		RespondsWith(http.StatusCreated, response("session")).
		RespondsWith(http.StatusBadRequest, response("invalid input"))
	login := spec.NewOperation("login").WithTags("auth").
		AddParam(bodyParam()).
		RespondsWith(http.StatusOK, response("session")).
		RespondsWith(http.StatusUnauthorized, response("invalid credentials"))

	me := spec.NewOperation("me").WithTags("auth").SecuredWith(securityName).
		RespondsWith(http.StatusOK, response("account"))
	updateMe := write("update_me", "auth", http.StatusOK).AddParam(bodyParam())

	availability := spec.NewOperation("barber_availability").WithTags("appointments").
		AddParam(idParam()).
		AddParam(spec.QueryParam("date").Typed("string", "date").AsRequired()).
		AddParam(spec.QueryParam("duration").Typed("integer", "int32")).
		RespondsWith(http.StatusOK, response("free slots")).
		RespondsWith(http.StatusNotFound, response("unknown barber"))
	agenda := spec.NewOperation("barber_agenda").WithTags("appointments").
		AddParam(idParam()).
		AddParam(spec.QueryParam("date").Typed("string", "date").AsRequired()).
		RespondsWith(http.StatusOK, response("appointments of the day"))

	return map[string]spec.PathItem{
		"/auth/register":              {PathItemProps: spec.PathItemProps{Post: register}},
		"/auth/login":                 {PathItemProps: spec.PathItemProps{Post: login}},
		"/me":                         {PathItemProps: spec.PathItemProps{Get: me, Patch: updateMe}},
		"/appointments/{id}/confirm":  {PathItemProps: spec.PathItemProps{Post: action("confirm_appointment", "appointments", "pending to confirmed")}},
		"/appointments/{id}/cancel":   {PathItemProps: spec.PathItemProps{Post: action("cancel_appointment", "appointments", "pending or confirmed to cancelled")}},
		"/appointments/{id}/complete": {PathItemProps: spec.PathItemProps{Post: action("complete_appointment", "appointments", "pending or confirmed to completed")}},
		"/barbers/{id}/availability":  {PathItemProps: spec.PathItemProps{Get: availability}},
		"/barbers/{id}/agenda":        {PathItemProps: spec.PathItemProps{Get: agenda}},
		"/payments/{id}/sync":         {PathItemProps: spec.PathItemProps{Post: action("sync_payment", "payments", "refresh status from the provider")}},
	}
}

func write(id, tag string, status int) *spec.Operation {
	return spec.NewOperation(id).
		WithTags(tag).
		SecuredWith(securityName).
		RespondsWith(status, response("stored")).
		RespondsWith(http.StatusBadRequest, response("validation_error")).
		RespondsWith(http.StatusUnauthorized, response("missing or invalid token"))
}

func paramType(k query.Kind) (string, string) {
	switch k {
	case query.KindInt:
		return "integer", "int64"
	case query.KindBool:
		return "boolean", ""
	case query.KindDecimal:
		return "number", "double"
	case query.KindDateTime:
		return "string", "date-time"
	default:
		return "string", ""
	}
}

func idParam() *spec.Parameter {
	return spec.PathParam("id").Typed("integer", "int64")
}

func bodyParam() *spec.Parameter {
	return spec.BodyParam("body", &spec.Schema{SchemaProps: spec.SchemaProps{Type: spec.StringOrArray{"object"}}})
}

func response(desc string) *spec.Response {
	return spec.NewResponse().WithDescription(desc)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ======================================================
// SERVING
// ======================================================

// Document renders the built document once and serves it.
type Document struct {
	doc  *spec.Swagger
	once sync.Once
	raw  []byte
}

func NewDocument(version string, entries []Entry) *Document {
	return &Document{doc: Build(version, entries)}
}

func (d *Document) bytes() []byte {
	d.once.Do(func() {
		raw, err := json.Marshal(d.doc)
		if err != nil {
			raw = []byte(`{}`)
		}
		d.raw = raw
	})
	return d.raw
}

// ReadDoc satisfies swag.Swagger.
func (d *Document) ReadDoc() string {
	return string(d.bytes())
}

func (d *Document) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", d.bytes())
	}
}

var registerOnce sync.Once

// Register exposes d to swag under its default instance name. Only the
// first call in a process has an effect.
func Register(d *Document) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, d)
	})
}
