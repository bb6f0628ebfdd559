package analytics

import (
	"launchboard/internal/dataset"
)

// 成败桶的展示标签
const (
	LabelSuccess = "Success (1)"
	LabelFailure = "Failure (0)"
)

// SiteCount 某发射场的成功发射次数
type SiteCount struct {
	Site  string `json:"site"`
	Count int    `json:"count"`
}

// OutcomeCount 单个发射场的成败计数
type OutcomeCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SiteSuccessCounts 统计各发射场的成功发射次数（结果为 1 的记录）
// 结果按发射场名称排序，驱动“全部发射场”模式下的饼图
func SiteSuccessCounts(ds *dataset.Dataset) []SiteCount {
	bySite := make(map[string]int)
	for _, r := range ds.Records {
		if r.Outcome == 1 {
			bySite[r.Site]++
		}
	}

	counts := make([]SiteCount, 0, len(bySite))
	for _, site := range ds.Sites() {
		if n, ok := bySite[site]; ok {
			counts = append(counts, SiteCount{Site: site, Count: n})
		}
	}
	return counts
}

// OutcomeBreakdown 统计单个发射场的成败分布
// 未知发射场得到空结果而非错误（下拉框只会提供合法值，这里不做校验）
// 计数为 0 的桶不出现在结果中
func OutcomeBreakdown(ds *dataset.Dataset, site string) []OutcomeCount {
	var success, failure int
	for _, r := range ds.Records {
		if r.Site != site {
			continue
		}
		if r.Outcome == 1 {
			success++
		} else {
			failure++
		}
	}

	counts := make([]OutcomeCount, 0, 2)
	if success > 0 {
		counts = append(counts, OutcomeCount{Label: LabelSuccess, Count: success})
	}
	if failure > 0 {
		counts = append(counts, OutcomeCount{Label: LabelFailure, Count: failure})
	}
	return counts
}
