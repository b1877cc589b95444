package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	dashboard, err := h.dashboardService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) Reserva(c *gin.Context) {
	userID := middleware.GetUserID(c)

	status, err := h.dashboardService.Reserva(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
