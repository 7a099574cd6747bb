package controller

import (
	"errors"
	"strconv"

	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	Results  *service.ResultsService
	Activity *service.JudgeActivityService
}

func NewResultsController(results *service.ResultsService, activity *service.JudgeActivityService) *ResultsController {
	return &ResultsController{Results: results, Activity: activity}
}

// @Summary Ranked results for a hackathon
// @Description Leaderboard plus summary; pass breakdown=true for the per-judge audit view
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Param breakdown query bool false "Include per-judge/per-criterion breakdown"
// @Success 200 {object} util.Response
// @Router /api/admin/hackathons/{id}/results [get]
func (c *ResultsController) GetResults(ctx *gin.Context) {
	hackathonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid hackathon id")
		return
	}

	includeBreakdown := ctx.Query("breakdown") == "true"

	results, err := c.Results.Compute(uint(hackathonID), includeBreakdown)
	if err != nil {
		if errors.Is(err, util.ErrHackathonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// @Summary Judge evaluation progress
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Success 200 {object} util.Response
// @Router /api/admin/hackathons/{id}/judge-activity [get]
func (c *ResultsController) GetJudgeActivity(ctx *gin.Context) {
	hackathonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid hackathon id")
		return
	}

	activities, summary, err := c.Activity.ComputeActivity(uint(hackathonID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"judges": activities, "summary": summary})
}
