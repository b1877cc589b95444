package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type PreferenciaHandler struct {
	preferenciaService service.PreferenciaService
}

func NewPreferenciaHandler(preferenciaService service.PreferenciaService) *PreferenciaHandler {
	return &PreferenciaHandler{preferenciaService: preferenciaService}
}

func (h *PreferenciaHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	prefs, err := h.preferenciaService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenciaHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.PreferenciasUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.preferenciaService.Update(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
