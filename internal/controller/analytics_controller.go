package controller

import (
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary Top or bottom quiz scores for a position
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param positionId path int true "position id"
// @Param limit query int false "number of entries" default(10)
// @Param order query string false "desc (default) or asc"
// @Success 200 {object} util.Response
// @Router /admin/analytics/positions/{positionId}/top [get]
func (c *AnalyticsController) TopByPosition(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	ascending := ctx.Query("order") == "asc"

	entries, err := c.Service.TopScoresByPosition(positionID, limit, ascending)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Top or bottom quiz scores of a user
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Param limit query int false "number of entries" default(10)
// @Param order query string false "desc (default) or asc"
// @Success 200 {object} util.Response
// @Router /admin/analytics/users/{userId}/top [get]
func (c *AnalyticsController) TopByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	ascending := ctx.Query("order") == "asc"

	entries, err := c.Service.TopScoresByUser(userID, limit, ascending)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Highest and lowest quiz for a position
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param positionId path int true "position id"
// @Success 200 {object} util.Response
// @Router /admin/analytics/positions/{positionId}/extremes [get]
func (c *AnalyticsController) Extremes(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))

	highest, err := c.Service.HighestScore(positionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	lowest, err := c.Service.LowestScore(positionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"highest": highest, "lowest": lowest})
}

// @Summary Passed and failed quizzes for a position
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param positionId path int true "position id"
// @Success 200 {object} util.Response
// @Router /admin/analytics/positions/{positionId}/outcomes [get]
func (c *AnalyticsController) Outcomes(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))

	passed, err := c.Service.PassedQuizzes(positionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	failed, err := c.Service.FailedQuizzes(positionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"passed": passed, "failed": failed})
}

// @Summary Average quiz score per position
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/analytics/positions/averages [get]
func (c *AnalyticsController) PositionAverages(ctx *gin.Context) {
	rows, err := c.Service.PositionAverages(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
