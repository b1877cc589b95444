package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/service"
)

type SimuladorHandler struct {
	simuladorService service.SimuladorService
}

func NewSimuladorHandler(simuladorService service.SimuladorService) *SimuladorHandler {
	return &SimuladorHandler{simuladorService: simuladorService}
}

// Projetar roda a simulação de juros compostos. Não toca no banco:
// entrada vem toda do corpo e o horizonte é limitado dentro da regra.
func (h *SimuladorHandler) Projetar(c *gin.Context) {
	var input service.SimuladorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.simuladorService.Projetar(&input))
}
