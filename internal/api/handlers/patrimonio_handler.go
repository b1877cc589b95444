package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type PatrimonioHandler struct {
	patrimonioService service.PatrimonioService
}

func NewPatrimonioHandler(patrimonioService service.PatrimonioService) *PatrimonioHandler {
	return &PatrimonioHandler{patrimonioService: patrimonioService}
}

func (h *PatrimonioHandler) Historico(c *gin.Context) {
	userID := middleware.GetUserID(c)

	snapshots, err := h.patrimonioService.Historico(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

// Snapshot força a gravação do mês corrente, útil depois de ajustes em lote.
func (h *PatrimonioHandler) Snapshot(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.patrimonioService.Snapshot(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "snapshot gravado"})
}
