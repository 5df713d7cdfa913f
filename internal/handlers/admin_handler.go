package handlers

import (
	"net/http"

	"autozar_backend/internal/auth"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/middleware"
	"autozar_backend/internal/models"
	"autozar_backend/internal/services"
	"autozar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes moderation and record audits to administrators.
type AdminHandler struct {
	*BaseHandler
	lifecycleService services.LifecycleService
	gate             services.PublicationGate
}

func NewAdminHandler(base *BaseHandler, lifecycleService services.LifecycleService, gate services.PublicationGate) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		lifecycleService: lifecycleService,
		gate:             gate,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(authMiddleware, middleware.RequirePermission(auth.PermListingsModerate))
	{
		admin.POST("/listings/:id/moderate", h.Moderate)
		admin.GET("/listings/audit", h.Audit)
	}
}

func (h *AdminHandler) Moderate(c *gin.Context) {
	var req dto.ModerateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.lifecycleService.Moderate(c.Request.Context(), c.Param("id"), req.Outcome, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Audit reports valid and malformed persisted records per category.
// ?category= narrows the report to one category.
func (h *AdminHandler) Audit(c *gin.Context) {
	categories := models.Categories
	if raw := c.Query("category"); raw != "" {
		cat := models.Category(raw)
		if !cat.Valid() {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Unknown category: "+raw))
			return
		}
		categories = []models.Category{cat}
	}

	reports := make([]services.AuditReport, 0, len(categories))
	for _, cat := range categories {
		report, err := h.gate.Audit(c.Request.Context(), cat)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		reports = append(reports, report)
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: reports})
}
