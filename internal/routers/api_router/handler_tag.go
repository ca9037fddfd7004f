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

// TagHandler 标签 API 路由处理器
type TagHandler struct {
	*Handler
}

// NewTagHandler 创建 TagHandler 实例
func NewTagHandler(a *app.App) *TagHandler {
	return &TagHandler{Handler: NewHandler(a)}
}

// List 获取标签列表
func (h *TagHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	tags, err := h.App.TagService.List(ctx)
	if err != nil {
		h.logError(ctx, "TagHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tags))
}

// Get 获取单个标签
func (h *TagHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Get(ctx, id)
	if err != nil {
		h.logError(ctx, "TagHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// Create 创建标签
func (h *TagHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(tag))
}

// Update 更新标签
func (h *TagHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	params := &dto.TagUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Update(ctx, id, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// Delete 删除标签，其笔记关联一并移除
func (h *TagHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if err := h.App.TagService.Delete(ctx, id); err != nil {
		h.logError(ctx, "TagHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}
