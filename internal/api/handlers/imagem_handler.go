package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/service"
)

type ImagemHandler struct {
	imagemService service.ImagemService
}

func NewImagemHandler(imagemService service.ImagemService) *ImagemHandler {
	return &ImagemHandler{imagemService: imagemService}
}

func (h *ImagemHandler) Search(c *gin.Context) {
	query := c.Query("q")

	imgs, err := h.imagemService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, imgs)
}
