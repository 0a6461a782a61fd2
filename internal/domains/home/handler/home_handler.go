package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/home/service"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/response"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

type HomeHandler struct {
	service service.ServiceInterface
}

func NewHomeHandler(svc service.ServiceInterface) *HomeHandler {
	return &HomeHandler{service: svc}
}

func (h *HomeHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("", h.Create)
	rg.GET("", h.GetAll)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// POST /home
func (h *HomeHandler) Create(c *gin.Context) {
	var req home.HomeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corpo da requisição inválido: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	conf, err := h.service.Create(c.Request.Context(), req.Paragrafos)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conf)
}

// GET /home
func (h *HomeHandler) GetAll(c *gin.Context) {
	texts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, texts)
}

// GET /home/:id returns the paragraph list only.
func (h *HomeHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido: deve ser um número inteiro positivo.")
		return
	}

	paragraphs, err := h.service.GetParagraphs(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, paragraphs)
}

// PUT /home/:id
func (h *HomeHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido: deve ser um número inteiro positivo.")
		return
	}

	var req home.HomeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corpo da requisição inválido: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	conf, err := h.service.Update(c.Request.Context(), id, req.Paragrafos)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf)
}

// DELETE /home/:id
func (h *HomeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID inválido: deve ser um número inteiro positivo.")
		return
	}

	conf, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf)
}
