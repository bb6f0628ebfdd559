package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchboard/internal/chart"
	"launchboard/internal/dataset"
	"launchboard/internal/metrics"
)

// GetSuccessPie 成功发射饼图
// GET /api/charts/success-pie?site=
// site 缺省为 ALL；未知发射场返回空图而非错误
func (h *Handler) GetSuccessPie(c *gin.Context) {
	site := c.DefaultQuery("site", dataset.SiteAll)

	metrics.RecordChartRender("success_pie", site)
	c.JSON(http.StatusOK, chart.SuccessPie(h.ds, site))
}

// GetPayloadScatter 载荷-结果散点图
// GET /api/charts/payload-scatter?site=&low=&high=
// low/high 缺省为数据集的载荷边界；滑块禁止交叉，low > high 只可能是非法请求
func (h *Handler) GetPayloadScatter(c *gin.Context) {
	site := c.DefaultQuery("site", dataset.SiteAll)

	low, err := parseBound(c.Query("low"), h.ds.PayloadMin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数 low 不是数字"})
		return
	}
	high, err := parseBound(c.Query("high"), h.ds.PayloadMax)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数 high 不是数字"})
		return
	}
	if low > high {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法载荷区间"})
		return
	}

	metrics.RecordChartRender("payload_scatter", site)
	c.JSON(http.StatusOK, chart.PayloadScatter(h.ds, site, low, high))
}

// parseBound 解析区间端点，空值回退到数据集边界
func parseBound(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
