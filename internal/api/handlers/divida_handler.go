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

type DividaHandler struct {
	dividaService service.DividaService
}

func NewDividaHandler(dividaService service.DividaService) *DividaHandler {
	return &DividaHandler{dividaService: dividaService}
}

func (h *DividaHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.DividaCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	divida, err := h.dividaService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, divida)
}

func (h *DividaHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	dividas, err := h.dividaService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dividas)
}

func (h *DividaHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid divida ID"})
		return
	}

	var input models.DividaUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	divida, err := h.dividaService.Update(c.Request.Context(), userID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, divida)
}

func (h *DividaHandler) RegistrarPagamento(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid divida ID"})
		return
	}

	var input struct {
		Valor decimal.Decimal `json:"valor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	divida, err := h.dividaService.RegistrarPagamento(c.Request.Context(), userID, id, input.Valor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, divida)
}

func (h *DividaHandler) Quitar(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid divida ID"})
		return
	}

	divida, err := h.dividaService.Quitar(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, divida)
}

func (h *DividaHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid divida ID"})
		return
	}

	if err := h.dividaService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "divida deleted"})
}
