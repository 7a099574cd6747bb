package controller

import (
	"errors"
	"strconv"

	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/util"
	"hackathon_judging_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type EvaluationController struct {
	Service *service.EvaluationService
}

func NewEvaluationController(svc *service.EvaluationService) *EvaluationController {
	return &EvaluationController{Service: svc}
}

type SubmitEvaluationRequest struct {
	TeamID uint `json:"teamId" binding:"required"`
	// Scores maps criterion ID to the 1-5 star rating. Every active criterion
	// of the hackathon must be present.
	Scores map[uint]int `json:"scores" binding:"required"`
}

// @Summary Submit a full evaluation of one team
// @Description Replaces the judge's previous score set for the team, if any
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Param body body SubmitEvaluationRequest true "Scores per criterion"
// @Success 200 {object} util.Response
// @Router /api/hackathons/{id}/evaluations [post]
func (c *EvaluationController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	hackathonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid hackathon id")
		return
	}

	var req SubmitEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	saved, err := c.Service.Submit(user.UserID, uint(hackathonID), req.TeamID, req.Scores)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrJudgeNotAuthorized):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrEvaluationClosed):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrHackathonNotFound), errors.Is(err, util.ErrTeamNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrMissingCriteriaScore), errors.Is(err, util.ErrScoreOutOfRange), errors.Is(err, util.ErrNoCriteria):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.EvaluationCounter.WithLabelValues(strconv.Itoa(hackathonID)).Inc()
	util.Success(ctx, gin.H{"savedEntries": saved})
}
