package controller

import (
	"errors"
	"strconv"

	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SnapshotController struct {
	Service *service.SnapshotService
}

func NewSnapshotController(svc *service.SnapshotService) *SnapshotController {
	return &SnapshotController{Service: svc}
}

type CreateSnapshotRequest struct {
	Name string `json:"name"`
}

// @Summary Freeze the current results of a hackathon
// @Description Stores an immutable copy of the full ranked results and audit breakdown
// @Tags snapshots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hackathon ID"
// @Param body body CreateSnapshotRequest false "Optional label"
// @Success 201 {object} util.Response
// @Router /api/admin/hackathons/{id}/snapshots [post]
func (c *SnapshotController) Create(ctx *gin.Context) {
	hackathonID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid hackathon id")
		return
	}

	var req CreateSnapshotRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	snapshot, err := c.Service.Create(uint(hackathonID), req.Name)
	if err != nil {
		if errors.Is(err, util.ErrHackathonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, snapshot)
}

// @Summary List stored snapshots
// @Tags snapshots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/snapshots [get]
func (c *SnapshotController) List(ctx *gin.Context) {
	summaries, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// @Summary Fetch a snapshot by ID
// @Description Returns exactly what was frozen at creation time
// @Tags snapshots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Snapshot ID"
// @Success 200 {object} util.Response
// @Router /api/admin/snapshots/{id} [get]
func (c *SnapshotController) Get(ctx *gin.Context) {
	snapshot, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSnapshotNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

// @Summary Publish a snapshot to object storage
// @Tags snapshots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Snapshot ID"
// @Success 200 {object} util.Response
// @Router /api/admin/snapshots/{id}/export [post]
func (c *SnapshotController) Export(ctx *gin.Context) {
	url, err := c.Service.Export(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSnapshotNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrStorageUnavailable):
			util.Error(ctx, 503, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
