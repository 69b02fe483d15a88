package controller

import (
	"bytes"
	"devquiz_backend/internal/service"
	"devquiz_backend/internal/util"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	UserService *service.UserService
	Storage     *service.StorageService
}

func NewUserController(userService *service.UserService, storage *service.StorageService) *UserController {
	return &UserController{UserService: userService, Storage: storage}
}

// @Summary Update own profile
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdateProfileReq true "profile fields"
// @Success 200 {object} util.Response
// @Router /user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Upload an avatar image
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response
// @Router /user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

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

	// sniff the head, then stitch it back for upload
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	mimeType, err := util.ValidateMimeType(bytes.NewReader(head[:n]), []string{"image/"})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	reader := io.MultiReader(bytes.NewReader(head[:n]), file)

	objectName := fmt.Sprintf("avatars/%d/%s%s", claims.UserID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), objectName, reader, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	avatar := url
	user, err := c.UserService.UpdateProfile(claims.UserID, service.UpdateProfileReq{Avatar: &avatar})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": user.Avatar})
}
