package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/services"
	"github.com/gaurisonawane07/StoreRater/utils"
)

// Rating binds as float64 so the service can tell "4.5" apart from a
// missing field and answer with its own message.
type SubmitRatingRequest struct {
	StoreID uint    `json:"store_id"`
	Rating  float64 `json:"rating"`
}

type RatingController struct{ Ratings *services.RatingService }

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{Ratings: ratings}
}

// POST /api/ratings (role: user)
func (rc *RatingController) Create(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	outcome, err := rc.Ratings.SubmitOrUpdate(utils.CurrentUserID(c), req.StoreID, req.Rating)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, outcome)
}
