package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farefinder/internal/search"
)

type FavoriteHandler struct {
	service *Service
}

func NewFavoriteHandler(s *Service) *FavoriteHandler {
	return &FavoriteHandler{
		service: s,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/favorites", h.SaveFavoriteHandler)
	router.DELETE("/v1/favorites/:id", h.RemoveFavoriteHandler)
	router.GET("/v1/favorites", h.GetFavoritesHandler)
}

type saveFavoriteRequest struct {
	UserID int64              `json:"userId"`
	Flight search.FlightOffer `json:"flight"`
}

// SaveFavoriteHandler godoc
// @Summary      Save a flight offer as a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request body saveFavoriteRequest true "User id and flight offer"
// @Success      200 {object} SaveResult
// @Failure      400 {object} map[string]string
// @Router       /v1/favorites [post]
func (h *FavoriteHandler) SaveFavoriteHandler(c *gin.Context) {
	var req saveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	c.JSON(http.StatusOK, h.service.SaveFavorite(c.Request.Context(), req.UserID, req.Flight))
}

// RemoveFavoriteHandler godoc
// @Summary      Remove a saved favorite
// @Tags         favorites
// @Produce      json
// @Param        id path int true "Favorite id"
// @Param        user_id query int true "Owning user id"
// @Success      200 {object} RemoveResult
// @Failure      400 {object} map[string]string
// @Router       /v1/favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavoriteHandler(c *gin.Context) {
	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite id"})
		return
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	c.JSON(http.StatusOK, h.service.RemoveFavorite(c.Request.Context(), userID, favoriteID))
}

// GetFavoritesHandler godoc
// @Summary      List a user's saved favorites
// @Tags         favorites
// @Produce      json
// @Param        user_id query int true "Owning user id"
// @Success      200 {array} SavedOffer
// @Failure      400 {object} map[string]string
// @Router       /v1/favorites [get]
func (h *FavoriteHandler) GetFavoritesHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	c.JSON(http.StatusOK, h.service.GetFavorites(c.Request.Context(), userID))
}
