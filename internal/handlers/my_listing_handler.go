package handlers

import (
	"encoding/json"
	"net/http"

	"autozar_backend/internal/auth"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/middleware"
	"autozar_backend/internal/services"
	"autozar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const maxDraftBytes = 256 << 10

// MyListingHandler is the seller side: autosave, submission, payment and withdrawal.
type MyListingHandler struct {
	*BaseHandler
	lifecycleService services.LifecycleService
}

func NewMyListingHandler(base *BaseHandler, lifecycleService services.LifecycleService) *MyListingHandler {
	return &MyListingHandler{
		BaseHandler:      base,
		lifecycleService: lifecycleService,
	}
}

func (h *MyListingHandler) RegisterRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	my := r.Group("/my")
	my.Use(authMiddleware)
	{
		drafts := my.Group("/drafts")
		drafts.Use(middleware.RequirePermission(auth.PermListingsWriteSelf))
		drafts.GET("/:category", h.GetDraft)
		drafts.PUT("/:category", h.SaveDraft)

		write := my.Group("/listings")
		write.Use(middleware.RequirePermission(auth.PermListingsWriteSelf))
		write.POST("", h.Submit)
		write.POST("/:id/payment", h.ConfirmPayment)
		write.DELETE("/:id", h.Withdraw)

		read := my.Group("/listings")
		read.Use(middleware.RequirePermission(auth.PermListingsReadSelf))
		read.GET("", h.MyListings)
		read.GET("/:id", h.MyListing)
		read.GET("/:id/payments", h.PaymentHistory)
	}
}

func (h *MyListingHandler) GetDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cat, ok := h.ParseCategory(c)
	if !ok {
		return
	}

	draft, err := h.lifecycleService.GetDraft(c.Request.Context(), userID, cat)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if draft == nil {
		c.JSON(http.StatusOK, dto.DataResponse{Data: nil})
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: draft})
}

func (h *MyListingHandler) SaveDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cat, ok := h.ParseCategory(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDraftBytes)
	body, err := c.GetRawData()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Draft body is too large or unreadable"))
		return
	}

	if err := h.lifecycleService.SaveDraft(c.Request.Context(), userID, cat, json.RawMessage(body)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MyListingHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.lifecycleService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *MyListingHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ConfirmPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pub, err := h.lifecycleService.ConfirmPayment(c.Request.Context(), userID, c.Param("id"), req.ToPlan())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pub)
}

func (h *MyListingHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.Withdraw(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MyListingHandler) MyListings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listings, err := h.lifecycleService.MyListings(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: listings})
}

func (h *MyListingHandler) MyListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listing, err := h.lifecycleService.MyListing(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: listing})
}

func (h *MyListingHandler) PaymentHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	records, err := h.lifecycleService.PaymentHistory(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: records})
}
