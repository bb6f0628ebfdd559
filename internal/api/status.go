package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	DatasetID    string  `json:"datasetId"`    // 本次加载的数据集 ID
	SourceFile   string  `json:"sourceFile"`   // 数据来源文件
	TotalRecords int     `json:"totalRecords"` // 记录总数
	SiteCount    int     `json:"siteCount"`    // 发射场数量
	PayloadMin   float64 `json:"payloadMin"`   // 载荷最小值
	PayloadMax   float64 `json:"payloadMax"`   // 载荷最大值
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		DatasetID:    h.ds.ID,
		SourceFile:   h.ds.SourceFile,
		TotalRecords: len(h.ds.Records),
		SiteCount:    len(h.ds.Sites()),
		PayloadMin:   h.ds.PayloadMin,
		PayloadMax:   h.ds.PayloadMax,
	})
}
