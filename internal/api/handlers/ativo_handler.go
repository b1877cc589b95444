package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type AtivoHandler struct {
	ativoService service.AtivoService
}

func NewAtivoHandler(ativoService service.AtivoService) *AtivoHandler {
	return &AtivoHandler{ativoService: ativoService}
}

func (h *AtivoHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.AtivoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ativo, err := h.ativoService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ativo)
}

func (h *AtivoHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	ativos, err := h.ativoService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ativos)
}

func (h *AtivoHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ativo ID"})
		return
	}

	var input models.AtivoUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ativo, err := h.ativoService.Update(c.Request.Context(), userID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ativo)
}

func (h *AtivoHandler) AddAporte(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ativo ID"})
		return
	}

	var input struct {
		Valor decimal.Decimal `json:"valor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ativo, err := h.ativoService.AddAporte(c.Request.Context(), userID, id, input.Valor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ativo)
}

func (h *AtivoHandler) SetValorAtual(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ativo ID"})
		return
	}

	var input struct {
		Valor decimal.Decimal `json:"valor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ativo, err := h.ativoService.SetValorAtual(c.Request.Context(), userID, id, input.Valor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ativo)
}

func (h *AtivoHandler) ResetInvestimentos(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.ativoService.ResetInvestimentos(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "investimentos zerados"})
}

func (h *AtivoHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ativo ID"})
		return
	}

	if err := h.ativoService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ativo deleted"})
}

func (h *AtivoHandler) Alocacao(c *gin.Context) {
	userID := middleware.GetUserID(c)

	resumo, err := h.ativoService.Alocacao(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumo)
}
