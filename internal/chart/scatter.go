package chart

import (
	"fmt"

	"launchboard/internal/analytics"
	"launchboard/internal/dataset"
)

// PayloadScatter 构建载荷-结果散点图
// x 轴为载荷质量，y 轴为发射结果 (0/1)，助推器类别映射为颜色维度
// （每个类别一条 trace），发射场名称作为悬停信息
func PayloadScatter(ds *dataset.Dataset, site string, low, high float64) Figure {
	records := analytics.FilterPayload(ds, site, low, high)

	// 按助推器类别分组，保持首次出现的顺序
	var order []string
	groups := make(map[string][]dataset.Record)
	for _, r := range records {
		if _, ok := groups[r.Booster]; !ok {
			order = append(order, r.Booster)
		}
		groups[r.Booster] = append(groups[r.Booster], r)
	}

	data := make([]Trace, 0, len(order))
	for _, category := range order {
		rows := groups[category]
		trace := Trace{
			Type: "scatter",
			Mode: "markers",
			Name: category,
			X:    make([]float64, 0, len(rows)),
			Y:    make([]int, 0, len(rows)),
			Text: make([]string, 0, len(rows)),
		}
		for _, r := range rows {
			trace.X = append(trace.X, r.PayloadMass)
			trace.Y = append(trace.Y, r.Outcome)
			trace.Text = append(trace.Text, r.Site)
		}
		data = append(data, trace)
	}

	scope := "All Sites"
	if site != dataset.SiteAll {
		scope = site
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title: fmt.Sprintf("Payload vs. Launch Outcome (0/1) — %s", scope),
			XAxis: &Axis{
				Title: "Payload Mass (kg)",
				Range: []float64{low, high},
			},
			YAxis: &Axis{
				Title:    "Launch Outcome (class)",
				TickMode: "array",
				TickVals: []int{0, 1},
			},
		},
	}
}
