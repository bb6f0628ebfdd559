package dataset

import (
	"fmt"
	"strings"
)

// 各逻辑字段的候选列名，按优先级排列，取第一个存在的列
var (
	siteAliases    = []string{"Launch Site", "LaunchSite"}
	payloadAliases = []string{"Payload Mass (kg)", "PayloadMass", "PayloadMassKg"}
	outcomeAliases = []string{"class", "Class", "Outcome"}
	boosterAliases = []string{"Booster Version Category", "BoosterVersionCategory"}
)

// ResolveColumns 将逻辑字段解析为数据集中实际存在的列名
// 任一字段无法解析即为配置错误，报错时带上可用列名便于排查
func ResolveColumns(columns []string) (ColumnMap, error) {
	var cm ColumnMap
	var ok bool

	if cm.Payload, ok = pickColumn(columns, payloadAliases); !ok {
		return ColumnMap{}, resolveError("payload", payloadAliases, columns)
	}
	if cm.Outcome, ok = pickColumn(columns, outcomeAliases); !ok {
		return ColumnMap{}, resolveError("outcome", outcomeAliases, columns)
	}
	if cm.Site, ok = pickColumn(columns, siteAliases); !ok {
		return ColumnMap{}, resolveError("site", siteAliases, columns)
	}
	if cm.Booster, ok = pickColumn(columns, boosterAliases); !ok {
		return ColumnMap{}, resolveError("booster", boosterAliases, columns)
	}

	return cm, nil
}

// pickColumn 按优先级返回第一个存在于表头中的候选列名
func pickColumn(available []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, col := range available {
			if col == alias {
				return alias, true
			}
		}
	}
	return "", false
}

func resolveError(field string, aliases, available []string) error {
	return fmt.Errorf("couldn't find a %s column (tried %s), available columns: [%s]",
		field, strings.Join(aliases, " / "), strings.Join(available, ", "))
}
