package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	chartRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchboard_chart_renders_total",
			Help: "Total chart spec builds by chart type and selected site",
		},
		[]string{"chart", "site"},
	)

	initOnce sync.Once
)

// Init 注册指标，进程启动时调用一次
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(chartRenders)
	})
}

// RecordChartRender 记录一次图表构建
func RecordChartRender(chart, site string) {
	chartRenders.WithLabelValues(chart, site).Inc()
}

// Handler 返回 /metrics 端点的处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
