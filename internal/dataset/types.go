package dataset

import (
	"sort"
	"strconv"
)

// SiteAll 下拉框中“全部发射场”的哨兵值
const SiteAll = "ALL"

// Record 一条发射记录
type Record struct {
	Site        string  `json:"site"`        // 发射场标识
	PayloadMass float64 `json:"payloadMass"` // 载荷质量 (kg)
	Outcome     int     `json:"outcome"`     // 发射结果 1=成功 0=失败
	Booster     string  `json:"booster"`     // 助推器版本类别
}

// ColumnMap 逻辑字段到数据集中物理列名的映射
// 启动时解析一次，之后所有查询使用同一组列名
type ColumnMap struct {
	Site    string `json:"site"`
	Payload string `json:"payload"`
	Outcome string `json:"outcome"`
	Booster string `json:"booster"`
}

// SliderSpec 载荷范围滑块参数
type SliderSpec struct {
	Min   float64        `json:"min"`
	Max   float64        `json:"max"`
	Step  float64        `json:"step"`
	Marks map[int]string `json:"marks"` // 刻度标记：最小值/中点/最大值
}

// Dataset 启动时加载的只读数据集
// 加载完成后不再修改，聚合与过滤均产生派生视图
type Dataset struct {
	ID         string    `json:"id"`         // 数据集 ID（每次加载生成）
	SourceFile string    `json:"sourceFile"` // 来源文件名
	Columns    ColumnMap `json:"columns"`
	Records    []Record  `json:"-"`
	PayloadMin float64   `json:"payloadMin"`
	PayloadMax float64   `json:"payloadMax"`
}

// Sites 返回去重并排序后的发射场列表
func (d *Dataset) Sites() []string {
	seen := make(map[string]bool)
	sites := make([]string, 0)
	for _, r := range d.Records {
		if !seen[r.Site] {
			seen[r.Site] = true
			sites = append(sites, r.Site)
		}
	}
	sort.Strings(sites)
	return sites
}

// Slider 返回载荷范围滑块参数
// 步长 1000，标记取最小值、中点、最大值（按整数渲染）
func (d *Dataset) Slider() SliderSpec {
	lo := int(d.PayloadMin)
	hi := int(d.PayloadMax)
	mid := int((d.PayloadMin + d.PayloadMax) / 2)

	marks := map[int]string{
		lo:  strconv.Itoa(lo),
		mid: strconv.Itoa(mid),
		hi:  strconv.Itoa(hi),
	}

	return SliderSpec{
		Min:   d.PayloadMin,
		Max:   d.PayloadMax,
		Step:  1000,
		Marks: marks,
	}
}
