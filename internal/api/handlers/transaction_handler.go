package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.TransactionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	txs, err := h.transactionService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	var input models.TransactionUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), userID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) SetPaga(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	var input struct {
		Paga bool `json:"paga"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.transactionService.SetPaga(c.Request.Context(), userID, id, input.Paga); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paga": input.Paga})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// Resumo responde os cards do mês; sem ?mes usa o mês corrente.
func (h *TransactionHandler) Resumo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	mes := c.Query("mes")
	if mes == "" {
		mes = models.MonthName(time.Now())
	}

	resumo, err := h.transactionService.Resumo(c.Request.Context(), userID, mes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumo)
}

func (h *TransactionHandler) PorDia(c *gin.Context) {
	userID := middleware.GetUserID(c)

	agora := time.Now()
	mes := c.Query("mes")
	if mes == "" {
		mes = models.MonthName(agora)
	}
	ano := queryInt(c, "ano", agora.Year())

	buckets, err := h.transactionService.PorDia(c.Request.Context(), userID, mes, ano)
	if err != nil {
		respondError(c, err)
		return
	}
	if buckets == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month name"})
		return
	}

	c.JSON(http.StatusOK, buckets)
}

func (h *TransactionHandler) PorMes(c *gin.Context) {
	userID := middleware.GetUserID(c)

	ano := queryInt(c, "ano", time.Now().Year())

	buckets, err := h.transactionService.PorMes(c.Request.Context(), userID, ano)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
