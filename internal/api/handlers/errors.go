package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/PhabloC/oakio-backend/internal/service"
)

// respondError traduz os erros do domínio em status HTTP. Validação dá
// 400; recurso de outro usuário responde 404 igual a inexistente, para
// não vazar o que existe.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrNomeRequired),
		errors.Is(err, service.ErrInvalidValue),
		errors.Is(err, service.ErrInvalidTargetValue),
		errors.Is(err, service.ErrInvalidTotalValue),
		errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidAtivoTipo),
		errors.Is(err, service.ErrInvalidReservaMeses):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
