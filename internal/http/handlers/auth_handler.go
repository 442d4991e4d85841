package handlers

import (
	"net/http"

	"github.com/jayamiko/Visual-Book-App-Server/internal/http/middleware"
	"github.com/jayamiko/Visual-Book-App-Server/internal/services"
	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

// RegisterRequest mirrors the original registration contract, including the
// field order the validator reports violations in.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email,min=8"`
	Password string `json:"password" binding:"required,min=7"`
	Status   string `json:"status" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Phone    string `json:"phone" binding:"required,min=12"`
	City     string `json:"city" binding:"required"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,min=6"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.FirstValidationMessage(err))
		return
	}

	result, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Status:   req.Status,
		Gender:   req.Gender,
		Phone:    req.Phone,
		City:     req.City,
		Avatar:   req.Avatar,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"status": "success",
		"user":   result,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.FirstValidationMessage(err))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"status": "success",
		"user":   result,
	})
}

func (h *AuthHandler) CheckAuth(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, utils.CodeUnauthorized, "unauthorized"))
		return
	}

	user, err := h.auth.CheckAuth(c.Request.Context(), claims.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"status": "success",
		"data": gin.H{
			"user": gin.H{
				"id":       user.ID,
				"fullName": user.FullName,
				"email":    user.Email,
				"status":   user.Status,
				"gender":   user.Gender,
				"phone":    user.Phone,
				"city":     user.City,
				"avatar":   user.Avatar,
			},
		},
	})
}
