package handler

import (
	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// AuthHandler handles account registration and login
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register an account
// @Description New accounts always get the user role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Account"
// @Success 201 {object} utils.APIResponse{data=response.AuthResponse} "User registered successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed or user exists"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "User registered successfully", result)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response.AuthResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Login successful", result)
}
