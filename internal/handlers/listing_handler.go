package handlers

import (
	"net/http"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/models"
	"autozar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the public read side.
type ListingHandler struct {
	*BaseHandler
	queryService services.QueryService
}

func NewListingHandler(base *BaseHandler, queryService services.QueryService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:  base,
		queryService: queryService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/listings/:category", h.Search)
	r.GET("/listings/:category/facets/:dimension", h.Facets)
	r.GET("/listing/:id", h.GetListing)
	r.GET("/plans", h.GetPlans)
}

// bindListingQuery binds the category's query variant from the URL.
func (h *ListingHandler) bindListingQuery(c *gin.Context) (dto.ListingQuery, bool) {
	cat, ok := h.ParseCategory(c)
	if !ok {
		return nil, false
	}
	q, err := dto.NewListingQuery(cat)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	if !h.BindAndValidate_Query(c, q) {
		return nil, false
	}
	if seq := q.Params().Seq; seq != "" {
		c.Request = c.Request.WithContext(logger.WithSeq(c.Request.Context(), seq))
	}
	return q, true
}

func (h *ListingHandler) Search(c *gin.Context) {
	q, ok := h.bindListingQuery(c)
	if !ok {
		return
	}

	resp, err := h.queryService.Search(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Facets(c *gin.Context) {
	q, ok := h.bindListingQuery(c)
	if !ok {
		return
	}

	resp, err := h.queryService.Facets(c.Request.Context(), q, algorithms.Dimension(c.Param("dimension")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetListing answers 200 with "data": null when the listing is not public.
func (h *ListingHandler) GetListing(c *gin.Context) {
	detail, err := h.queryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusOK, dto.DataResponse{Data: nil})
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: detail})
}

func (h *ListingHandler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PlanCatalogResponse{
		Currency: "MNT",
		Plans:    models.PlanCatalog,
	})
}
