package handlers

import (
	"context"
	"net/http"

	"github.com/Brownie44l1/quickloan/internal/api/dto"
	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/gin-gonic/gin"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type LoanService interface {
	Submit(ctx context.Context, identityID string, req dto.SubmitApplicationRequest) (*models.Application, error)
	Status(ctx context.Context, identityID string) (*models.Application, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type ApplicationHandler struct {
	service LoanService
}

func NewApplicationHandler(service LoanService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// ==============================================
// ENDPOINTS
// ==============================================

// Submit handles POST /api/application/submit
func (h *ApplicationHandler) Submit(c *gin.Context) {
	identityID := identityFromContext(c)

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.service.Submit(c.Request.Context(), identityID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitApplicationResponse{
		Message:     "Application submitted successfully",
		Application: app,
	})
}

// Status handles GET /api/application/status
func (h *ApplicationHandler) Status(c *gin.Context) {
	identityID := identityFromContext(c)

	app, err := h.service.Status(c.Request.Context(), identityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationStatusResponse{
		HasApplication: app != nil,
		Application:    app,
	})
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *ApplicationHandler) RegisterRoutes(router *gin.Engine, auth AuthService) {
	application := router.Group("/api/application")
	application.Use(SessionAuth(auth))
	{
		application.POST("/submit", h.Submit)
		application.GET("/status", h.Status)
	}
}
