package chart

import (
	"fmt"

	"launchboard/internal/analytics"
	"launchboard/internal/dataset"
)

// SuccessPie 构建成功发射饼图
// site 为 ALL 时展示各发射场的成功次数，否则展示该发射场的成败分布
// 没有匹配记录时返回无切片的空图
func SuccessPie(ds *dataset.Dataset, site string) Figure {
	var labels []string
	var values []int
	var title string

	if site == dataset.SiteAll {
		for _, c := range analytics.SiteSuccessCounts(ds) {
			labels = append(labels, c.Site)
			values = append(values, c.Count)
		}
		title = "Total Successful Launches by Site"
	} else {
		for _, c := range analytics.OutcomeBreakdown(ds, site) {
			labels = append(labels, c.Label)
			values = append(values, c.Count)
		}
		title = fmt.Sprintf("Launch Outcomes for %s", site)
	}

	data := make([]Trace, 0, 1)
	if len(labels) > 0 {
		data = append(data, Trace{
			Type:   "pie",
			Labels: labels,
			Values: values,
		})
	}

	return Figure{
		Data:   data,
		Layout: Layout{Title: title},
	}
}
