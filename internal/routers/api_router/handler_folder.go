package api_router

import (
	"github.com/haierkeys/note-organizer-service/internal/app"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/note-organizer-service/pkg/app"
	"github.com/haierkeys/note-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/note-organizer-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FolderHandler 文件夹 API 路由处理器
type FolderHandler struct {
	*Handler
}

// NewFolderHandler 创建 FolderHandler 实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{Handler: NewHandler(a)}
}

// List 获取文件夹列表
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	folders, err := h.App.FolderService.List(ctx)
	if err != nil {
		h.logError(ctx, "FolderHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folders))
}

// Get 获取单个文件夹
func (h *FolderHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Get(ctx, id)
	if err != nil {
		h.logError(ctx, "FolderHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folder))
}

// Create 创建文件夹
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(folder))
}

// Update 更新文件夹
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	params := &dto.FolderUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("FolderHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Update(ctx, id, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folder))
}

// Delete 删除文件夹，所属笔记的归属被置空
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if err := h.App.FolderService.Delete(ctx, id); err != nil {
		h.logError(ctx, "FolderHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}
