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

type MetaHandler struct {
	metaService service.MetaService
}

func NewMetaHandler(metaService service.MetaService) *MetaHandler {
	return &MetaHandler{metaService: metaService}
}

func (h *MetaHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.MetaCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta, err := h.metaService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meta)
}

func (h *MetaHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	metas, err := h.metaService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metas)
}

func (h *MetaHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meta ID"})
		return
	}

	var input models.MetaUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta, err := h.metaService.Update(c.Request.Context(), userID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

func (h *MetaHandler) AddMoney(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meta ID"})
		return
	}

	var input struct {
		Valor decimal.Decimal `json:"valor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta, err := h.metaService.AddMoney(c.Request.Context(), userID, id, input.Valor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

func (h *MetaHandler) Complete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meta ID"})
		return
	}

	meta, err := h.metaService.Complete(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

func (h *MetaHandler) Reopen(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meta ID"})
		return
	}

	meta, err := h.metaService.Reopen(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

func (h *MetaHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meta ID"})
		return
	}

	if err := h.metaService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meta deleted"})
}
