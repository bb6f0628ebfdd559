package analytics

import (
	"launchboard/internal/dataset"
)

// FilterPayload 返回载荷质量落在 [low, high] 闭区间内的记录
// site 为 dataset.SiteAll 时不按发射场过滤，否则要求精确匹配
// 空结果是合法输出，调用方渲染空图即可
func FilterPayload(ds *dataset.Dataset, site string, low, high float64) []dataset.Record {
	matched := make([]dataset.Record, 0)
	for _, r := range ds.Records {
		if r.PayloadMass < low || r.PayloadMass > high {
			continue
		}
		if site != dataset.SiteAll && r.Site != site {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}
