package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/services"
	"github.com/gaurisonawane07/StoreRater/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type AuthController struct{ Auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func sanitizeUser(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Auth.Register(req.Name, req.Email, req.Password, req.Address)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": sanitizeUser(user), "token": token})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": sanitizeUser(user), "token": token})
}

// PUT /api/auth/password (protected)
func (a *AuthController) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Auth.UpdatePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Password updated")
}

// GET /api/auth/me (protected)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": sanitizeUser(user)})
}
