package api

import (
	"github.com/gin-gonic/gin"

	"launchboard/internal/dataset"
)

// Handler 仪表盘 API 处理器
type Handler struct {
	ds *dataset.Dataset
}

// NewHandler 创建 API 处理器
func NewHandler(ds *dataset.Dataset) *Handler {
	return &Handler{ds: ds}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 控件参数（下拉框选项 + 载荷滑块）
	router.GET("/controls", h.GetControls)

	// 图表
	router.GET("/charts/success-pie", h.GetSuccessPie)
	router.GET("/charts/payload-scatter", h.GetPayloadScatter)
}
