package handlers

import (
	"github.com/jayamiko/Visual-Book-App-Server/internal/services"
	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	auth *services.AuthService
}

func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// List returns every account. Admin only; password hashes never leave the
// repo layer.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"status": "success",
		"data":   gin.H{"users": users},
	})
}
