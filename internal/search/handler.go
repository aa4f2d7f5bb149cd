package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	service *Service
}

func NewSearchHandler(s *Service) *SearchHandler {
	return &SearchHandler{
		service: s,
	}
}

func (h *SearchHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights between two airports on a date
// @Description  Returns live provider offers for valid IATA pairs, mock offers otherwise
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      200 {array} FlightOffer
// @Failure      400 {object} map[string]interface{}
// @Router       /v1/flights/search [post]
func (h *SearchHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	offers := h.service.Search(c.Request.Context(), req)
	c.JSON(http.StatusOK, offers)
}
