package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content/service"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/response"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

// CreateRequest is the decoded body of a create call.
type CreateRequest[E any] interface {
	Validate() error
	ToEntity() *E
}

// UpdateRequest is the decoded body of a partial update.
type UpdateRequest[E any] interface {
	Validate() error
	service.Patch[E]
}

// Handler exposes one entity type's lifecycle over HTTP.
type Handler[E any] struct {
	service   service.Service[E]
	newCreate func() CreateRequest[E]
	newUpdate func() UpdateRequest[E]
}

func NewHandler[E any](svc service.Service[E], newCreate func() CreateRequest[E], newUpdate func() UpdateRequest[E]) *Handler[E] {
	return &Handler[E]{
		service:   svc,
		newCreate: newCreate,
		newUpdate: newUpdate,
	}
}

// RegisterRoutes mounts the handler on rg, e.g. router.Group("/campanhas").
func (h *Handler[E]) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/id/:id", h.GetByID)
	rg.GET("/slug/:slug", h.GetBySlug)
	rg.GET("/buscar", h.Search)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// POST /{type}
func (h *Handler[E]) Create(c *gin.Context) {
	req := h.newCreate()
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Corpo da requisição inválido: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	conf, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conf)
}

// GET /{type}
func (h *Handler[E]) List(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, all)
}

// GET /{type}/id/:id
func (h *Handler[E]) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// GET /{type}/slug/:slug
func (h *Handler[E]) GetBySlug(c *gin.Context) {
	e, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// GET /{type}/buscar?nome=
func (h *Handler[E]) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("nome"))
	if name == "" {
		response.BadRequest(c, "O parâmetro 'nome' é obrigatório.")
		return
	}

	matches, err := h.service.Search(c.Request.Context(), name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, matches)
}

// PATCH /{type}/:id
func (h *Handler[E]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	req := h.newUpdate()
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Corpo da requisição inválido: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	conf, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf)
}

// DELETE /{type}/:id
func (h *Handler[E]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	conf, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf)
}

// pathID writes a 400 and returns false when :id is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido: deve ser um número inteiro positivo.")
		return 0, false
	}
	return id, true
}
