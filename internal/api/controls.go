package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"launchboard/internal/dataset"
)

// DropdownOption 下拉框选项
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ControlsResponse 控件参数响应
type ControlsResponse struct {
	Sites  []DropdownOption   `json:"sites"`
	Slider dataset.SliderSpec `json:"slider"`
}

// GetControls 获取控件参数
// GET /api/controls
// 下拉框为 “All Sites” 加上排序后的全部发射场，滑块范围取数据集的载荷边界
func (h *Handler) GetControls(c *gin.Context) {
	options := []DropdownOption{
		{Label: "All Sites", Value: dataset.SiteAll},
	}
	for _, site := range h.ds.Sites() {
		options = append(options, DropdownOption{Label: site, Value: site})
	}

	c.JSON(http.StatusOK, ControlsResponse{
		Sites:  options,
		Slider: h.ds.Slider(),
	})
}
