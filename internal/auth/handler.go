package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *Service
}

func NewAuthHandler(s *Service) *AuthHandler {
	return &AuthHandler{
		service: s,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/auth/register", h.RegisterHandler)
	router.POST("/v1/auth/login", h.LoginHandler)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body credentialsRequest true "Email and password"
// @Success      200 {object} RegisterResult
// @Failure      400 {object} map[string]string
// @Router       /v1/auth/register [post]
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	c.JSON(http.StatusOK, h.service.Register(c.Request.Context(), req.Email, req.Password))
}

// LoginHandler godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body credentialsRequest true "Email and password"
// @Success      200 {object} LoginResult
// @Failure      400 {object} map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	c.JSON(http.StatusOK, h.service.Login(c.Request.Context(), req.Email, req.Password))
}
