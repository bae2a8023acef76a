package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type reader[T any] interface {
	List(ctx context.Context, q query.Query, page query.Page) ([]T, int64, error)
	Get(ctx context.Context, id uint) (*T, error)
}

type writer[T any, In any] interface {
	reader[T]
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id uint, in In, mode usecase.Mode) (*T, error)
}

// ReadHandler serves the collection and item reads of one resource.
type ReadHandler[T any] struct {
	uc   reader[T]
	res  *query.Resource
	opts QueryOptions
}

func NewReadHandler[T any](uc reader[T], res *query.Resource, opts QueryOptions) *ReadHandler[T] {
	return &ReadHandler[T]{uc: uc, res: res, opts: opts}
}

func (h *ReadHandler[T]) List(c *gin.Context) {
	q, page, ok := h.opts.parse(c, h.res)
	if !ok {
		return
	}

	items, total, err := h.uc.List(c.Request.Context(), q, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items, total, page)
}

func (h *ReadHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, item)
}

// ResourceHandler adds create, full and partial update and removal.
// Removal is soft deactivation or deletion depending on the resource.
type ResourceHandler[T any, In any] struct {
	*ReadHandler[T]
	uc     writer[T, In]
	remove func(ctx context.Context, id uint) error
}

func NewResourceHandler[T any, In any](
	uc writer[T, In],
	remove func(ctx context.Context, id uint) error,
	res *query.Resource,
	opts QueryOptions,
) *ResourceHandler[T, In] {
	return &ResourceHandler[T, In]{
		ReadHandler: NewReadHandler[T](uc, res, opts),
		uc:          uc,
		remove:      remove,
	}
}

func (h *ResourceHandler[T, In]) Create(c *gin.Context) {
	var in In
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.uc.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, item)
}

// Update serves both PUT (every required field) and PATCH (partial).
func (h *ResourceHandler[T, In]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in In
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.uc.Update(c.Request.Context(), id, in, writeMode(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, item)
}

func (h *ResourceHandler[T, In]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// Mount registers the collection and item routes; writes pass through
// the given guards.
func (h *ResourceHandler[T, In]) Mount(g *gin.RouterGroup, path string, guards ...gin.HandlerFunc) {
	g.GET("/"+path, h.List)
	g.GET("/"+path+"/:id", h.Get)

	write := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guards...), fn)
	}

	g.POST("/"+path, write(h.Create)...)
	g.PUT("/"+path+"/:id", write(h.Update)...)
	g.PATCH("/"+path+"/:id", write(h.Update)...)
	g.DELETE("/"+path+"/:id", write(h.Delete)...)
}
