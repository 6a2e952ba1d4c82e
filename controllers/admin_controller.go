package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/repository"
	"github.com/gaurisonawane07/StoreRater/services"
)

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Address  string      `json:"address"`
	Role     entity.Role `json:"role"`
}
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	OwnerID *uint  `json:"owner_id"`
}

type AdminController struct {
	Admin  *services.AdminService
	Stores *services.StoreService
}

func NewAdminController(admin *services.AdminService, stores *services.StoreService) *AdminController {
	return &AdminController{Admin: admin, Stores: stores}
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.Admin.Dashboard()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /api/admin/users
func (ac *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	f := repository.UserFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
		Role:    entity.Role(c.Query("role")),
		SortBy:  c.DefaultQuery("sortBy", "name"),
		SortDir: c.DefaultQuery("sortDir", "asc"),
		Page:    page,
		Limit:   limit,
	}

	users, err := ac.Admin.ListUsers(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// POST /api/admin/users
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Admin.CreateUser(req.Name, req.Email, req.Password, req.Address, req.Role)
	if err != nil {
		// this route reports duplicates as 400, not 409
		if apperr.KindOf(err) == apperr.KindConflict {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"user": gin.H{
		"id": user.ID, "name": user.Name, "email": user.Email,
		"address": user.Address, "role": user.Role,
	}})
}

// GET /api/admin/stores
func (ac *AdminController) StoresList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	stores, err := ac.Stores.AdminList(page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stores": stores})
}

// POST /api/admin/stores
func (ac *AdminController) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store, err := ac.Stores.CreateByAdmin(req.Name, req.Address, req.OwnerID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"store": gin.H{
		"id": store.ID, "name": store.Name, "address": store.Address, "owner_id": store.OwnerID,
	}})
}
