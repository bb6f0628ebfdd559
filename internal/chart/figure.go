package chart

// Figure Plotly 兼容的图表描述
// 后端只产出声明式结构，渲染完全交给前端的 Plotly
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace 单条数据序列（饼图或散点）
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []int     `json:"values,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []int     `json:"y,omitempty"`
	Text   []string  `json:"text,omitempty"` // 悬停时显示的发射场
}

// Layout 图表布局
type Layout struct {
	Title string `json:"title,omitempty"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
}

// Axis 坐标轴配置
type Axis struct {
	Title    string    `json:"title,omitempty"`
	Range    []float64 `json:"range,omitempty"`
	TickMode string    `json:"tickmode,omitempty"`
	TickVals []int     `json:"tickvals,omitempty"`
}
