package handlers

import (
	"net/http"

	"autozar_backend/internal/auth"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/middleware"
	"autozar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	*BaseHandler
	favoritesService services.FavoritesService
}

func NewFavoritesHandler(base *BaseHandler, favoritesService services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		BaseHandler:      base,
		favoritesService: favoritesService,
	}
}

func (h *FavoritesHandler) RegisterRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	my := r.Group("/my")
	my.Use(authMiddleware, middleware.RequirePermission(auth.PermFavoritesSelf))
	{
		my.GET("/favorites", h.ListFavorites)
		my.PUT("/favorites/:id", h.AddFavorite)
		my.DELETE("/favorites/:id", h.RemoveFavorite)

		my.GET("/recent", h.ListRecent)
		my.POST("/recent/:id", h.PushRecent)
	}
}

func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.favoritesService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: items})
}

func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoritesService.AddFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoritesService.RemoveFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoritesHandler) ListRecent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.favoritesService.ListRecent(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: items})
}

func (h *FavoritesHandler) PushRecent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoritesService.PushRecent(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
