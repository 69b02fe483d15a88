package controller

import (
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PositionController struct {
	Service *service.PositionService
}

func NewPositionController(svc *service.PositionService) *PositionController {
	return &PositionController{Service: svc}
}

// @Summary Create a position
// @Tags positions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.PositionReq true "position"
// @Success 201 {object} util.Response
// @Router /admin/positions [post]
func (c *PositionController) Create(ctx *gin.Context) {
	var req service.PositionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	position, err := c.Service.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, position)
}

// @Summary List positions
// @Tags positions
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /positions [get]
func (c *PositionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	positions, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: positions, Total: total, Page: page, Limit: limit})
}

// @Summary Position details
// @Tags positions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "position id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /positions/{id} [get]
func (c *PositionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	position, err := c.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrPositionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, position)
}

// @Summary Update a position
// @Tags positions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "position id"
// @Param body body service.PositionReq true "position"
// @Success 200 {object} util.Response
// @Router /admin/positions/{id} [put]
func (c *PositionController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.PositionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	position, err := c.Service.Update(id, req)
	if err != nil {
		if errors.Is(err, util.ErrPositionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, position)
}

// @Summary Delete a position with its questions and quizzes
// @Tags positions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "position id"
// @Success 200 {object} util.Response
// @Router /admin/positions/{id} [delete]
func (c *PositionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, util.ErrPositionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
