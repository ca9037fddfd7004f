package api_router

import (
	"strconv"

	"github.com/haierkeys/note-organizer-service/internal/app"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/note-organizer-service/pkg/app"
	"github.com/haierkeys/note-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/note-organizer-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 按标题、文件夹、标签过滤笔记，返回带文件夹与标签的完整对象
// @Tags 笔记
// @Produce json
// @Param params query dto.NoteListRequest false "过滤参数"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Tags 笔记
// @Produce json
// @Param id path int true "笔记ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Get(ctx, id)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Create 创建笔记
// @Summary 创建笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 201 {object} pkgapp.Res "创建成功"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Location", pkgapp.GetAccessHost(c)+"/api/notes/"+strconv.FormatInt(note.ID, 10))
	response.ToResponse(code.SuccessCreated.WithData(note))
}

// Update 更新笔记
// @Summary 更新笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Param id path int true "笔记ID"
// @Param params body dto.NoteUpdateRequest true "更新参数"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Update(ctx, id, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 删除笔记及其标签关联，目标不存在时同样返回 204
// @Tags 笔记
// @Param id path int true "笔记ID"
// @Success 204 "删除成功"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.pathID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, id); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}
