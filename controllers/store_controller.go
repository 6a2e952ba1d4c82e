package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/repository"
	"github.com/gaurisonawane07/StoreRater/services"
	"github.com/gaurisonawane07/StoreRater/utils"
)

type StoreController struct{ Stores *services.StoreService }

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{Stores: stores}
}

// GET /api/stores (optional auth — my_rating only when logged in)
func (sc *StoreController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	f := repository.StoreFilter{
		Query:   c.Query("q"),
		Address: c.Query("address"),
		SortBy:  c.DefaultQuery("sortBy", "name"),
		SortDir: c.DefaultQuery("sortDir", "asc"),
		Page:    page,
		Limit:   limit,
	}

	stores, err := sc.Stores.List(f, utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stores": stores})
}
