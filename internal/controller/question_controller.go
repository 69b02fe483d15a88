package controller

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Create a question with inline choices
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionReq true "question"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrChoicesOnPractical) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary List a position's question bank
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param positionId path int true "position id"
// @Param type query string false "theoretical or practical"
// @Param difficulty query int false "difficulty level 1-5"
// @Success 200 {object} util.Response
// @Router /admin/positions/{positionId}/questions [get]
func (c *QuestionController) ListByPosition(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))
	questionType := model.QuestionType(ctx.Query("type"))
	difficulty, _ := strconv.Atoi(ctx.Query("difficulty"))

	questions, err := c.Service.ListByPosition(positionID, questionType, difficulty)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Question details
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.QuestionReq true "question"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Update(id, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete a question with its choices and answers
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Add a choice to a theoretical question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.ChoiceReq true "choice"
// @Success 201 {object} util.Response
// @Router /admin/questions/{id}/choices [post]
func (c *QuestionController) AddChoice(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.ChoiceReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	choice, err := c.Service.AddChoice(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrChoicesOnPractical):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, choice)
}

// @Summary Delete a choice; restricted while answers reference it
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "choice id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/choices/{id} [delete]
func (c *QuestionController) DeleteChoice(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.DeleteChoice(id); err != nil {
		if errors.Is(err, util.ErrChoiceReferenced) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Upload a practical question attachment
// @Tags questions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param file formData file true "attachment"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id}/attachment [post]
func (c *QuestionController) UploadAttachment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.Service.UploadAttachment(ctx.Request.Context(), id, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"attachment": url})
}
