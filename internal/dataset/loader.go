package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Load 加载数据集，按扩展名区分 CSV 与 Excel
// 整个进程生命周期内只调用一次，失败即阻止启动
func Load(path string) (*Dataset, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	return build(path, rows)
}

// readCSV 读取 CSV 全部行
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 行宽以表头为准，缺列按空值处理

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// readExcel 读取第一个工作表的全部行
func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// build 解析表头、逐行构建记录并计算载荷范围
func build(path string, rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.New("dataset has no header row")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	cols, err := ResolveColumns(header)
	if err != nil {
		return nil, err
	}

	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[h] = i
	}

	ds := &Dataset{
		ID:         uuid.New().String(),
		SourceFile: filepath.Base(path),
		Columns:    cols,
	}

	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 2 // 1 起始，含表头行

		cell := func(col string) string {
			idx := colIndex[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		payload, err := strconv.ParseFloat(cell(cols.Payload), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid payload mass %q", line, cell(cols.Payload))
		}

		// 结果列只允许 0/1
		outcome, err := strconv.Atoi(cell(cols.Outcome))
		if err != nil || (outcome != 0 && outcome != 1) {
			return nil, fmt.Errorf("row %d: outcome must be 0 or 1, got %q", line, cell(cols.Outcome))
		}

		ds.Records = append(ds.Records, Record{
			Site:        cell(cols.Site),
			PayloadMass: payload,
			Outcome:     outcome,
			Booster:     cell(cols.Booster),
		})
	}

	for i, r := range ds.Records {
		if i == 0 || r.PayloadMass < ds.PayloadMin {
			ds.PayloadMin = r.PayloadMass
		}
		if i == 0 || r.PayloadMass > ds.PayloadMax {
			ds.PayloadMax = r.PayloadMass
		}
	}

	return ds, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
