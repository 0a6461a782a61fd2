package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/contact"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/contact/service"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/response"
)

type ContactHandler struct {
	service service.ServiceInterface
}

func NewContactHandler(svc service.ServiceInterface) *ContactHandler {
	return &ContactHandler{service: svc}
}

// POST /contato
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corpo da requisição inválido: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	saved, err := h.service.Submit(c.Request.Context(), req.ToSubmission())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, saved)
}
