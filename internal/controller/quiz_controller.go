package controller

import (
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"devquiz_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

type CreateQuizReq struct {
	PositionID uint `json:"positionId" binding:"required"`
}

type SubmitQuizReq struct {
	QuizID  uint                      `json:"quizId" binding:"required"`
	Answers []service.SubmittedAnswer `json:"answers"`
}

type ReviewQuizReq struct {
	QuizID  uint                      `json:"quizId" binding:"required"`
	Answers []service.PracticalReview `json:"answers" binding:"required,min=1,dive"`
}

// @Summary Assemble a new quiz for the current candidate
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateQuizReq true "target position"
// @Success 201 {object} util.Response
// @Router /quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.Service.CreateQuiz(req.PositionID, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.QuizzesCreated.Inc()
	util.Created(ctx, view)
}

// @Summary Submit answers for grading
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizReq true "answer set"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitQuiz(req.QuizID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.QuizzesSubmitted.Inc()
	util.Success(ctx, result)
}

// @Summary Score pending practical answers
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ReviewQuizReq true "scores per answer"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/quizzes/review [post]
func (c *QuizController) Review(ctx *gin.Context) {
	var req ReviewQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.ReviewPracticalAnswers(req.QuizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrEmptyReview),
			errors.Is(err, util.ErrAnswerNotInQuiz),
			errors.Is(err, util.ErrNotPracticalAnswer),
			errors.Is(err, util.ErrScoreOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Quiz result by id
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	result, err := c.Service.GetQuizByID(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary All quiz results of a user
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /quizzes/results/{userId} [get]
func (c *QuizController) ResultsByUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	results, err := c.Service.GetQuizResultsByUserID(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
