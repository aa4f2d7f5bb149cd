package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	state *State
}

func NewStatusHandler(state *State) *StatusHandler {
	return &StatusHandler{
		state: state,
	}
}

func (h *StatusHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/status", h.GetStatusHandler)
}

// GetStatusHandler godoc
// @Summary      Report provider configuration and connectivity health
// @Tags         status
// @Produce      json
// @Success      200 {object} Status
// @Router       /v1/status [get]
func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Snapshot())
}
