package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/services"
	"github.com/gaurisonawane07/StoreRater/utils"
)

type OwnerController struct{ Owner *services.OwnerService }

func NewOwnerController(owner *services.OwnerService) *OwnerController {
	return &OwnerController{Owner: owner}
}

// GET /api/owner/stores/ratings (role: owner)
func (oc *OwnerController) StoreRatings(c *gin.Context) {
	stores, err := oc.Owner.StoresWithRatings(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stores": stores})
}
