package controller

import (
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	Service *service.AssignmentService
}

func NewAssignmentController(svc *service.AssignmentService) *AssignmentController {
	return &AssignmentController{Service: svc}
}

type ReviewAssignmentReq struct {
	Score   int    `json:"score" binding:"min=0,max=10"`
	Comment string `json:"comment"`
}

// @Summary Create an assignment for a candidate
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateAssignmentReq true "assignment"
// @Success 201 {object} util.Response
// @Router /admin/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req service.CreateAssignmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.CreateAssignment(req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.BadRequest(ctx, "position has no practical questions to assign")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary Submit the assignment answer
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body service.SubmitAssignmentReq true "answer"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.SubmitAssignmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAssignment(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Review the assignment's practical answer
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body ReviewAssignmentReq true "score and comment"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/assignments/{id}/review [post]
func (c *AssignmentController) Review(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req ReviewAssignmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.ReviewAssignment(id, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotPracticalAnswer),
			errors.Is(err, util.ErrScoreOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Assignment result by id
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assignments/{id} [get]
func (c *AssignmentController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	result, err := c.Service.GetAssignmentByID(id)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Assignments of a user
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /assignments/results/{userId} [get]
func (c *AssignmentController) ResultsByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	results, err := c.Service.GetAssignmentsByUserID(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
