// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/haierkeys/note-organizer-service/internal/app"
	"github.com/haierkeys/note-organizer-service/internal/middleware"
	pkgapp "github.com/haierkeys/note-organizer-service/pkg/app"
	"github.com/haierkeys/note-organizer-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

func (h *Handler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}

// pathID 解析路径中的数字ID，非法时返回 false 并输出参数错误
func (h *Handler) pathID(c *gin.Context, response *pkgapp.Response) (int64, bool) {
	id, err := pathParamID(c, "id")
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return 0, false
	}
	return id, true
}
