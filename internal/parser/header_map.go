package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// HeaderMap 表头名到列索引的映射（规范化后比较，多余列忽略）
type HeaderMap map[string]int

// NewHeaderMap 从表头行创建映射。重复列名保留第一个。
func NewHeaderMap(headers []string) HeaderMap {
	m := make(HeaderMap, len(headers))
	for idx, h := range headers {
		key := strings.ToLower(NormalizeColumnName(h))
		if key == "" {
			continue
		}
		if _, ok := m[key]; !ok {
			m[key] = idx
		}
	}
	return m
}

// Column 按列名查找列索引
func (m HeaderMap) Column(name string) (int, bool) {
	idx, ok := m[strings.ToLower(NormalizeColumnName(name))]
	return idx, ok
}

// Require 校验必需列是否齐全，缺失即为该数据源的结构性错误
func (m HeaderMap) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := m.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("缺少必需列: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ReadSheet 读取第一个 Sheet 的全部行并建立表头映射，
// 供列结构不固定的数据源（如预约导出表）自行取列。
func ReadSheet(path string) ([][]string, HeaderMap, error) {
	rows, err := readSheetRows(path)
	if err != nil {
		return nil, nil, err
	}
	return rows, NewHeaderMap(rows[0]), nil
}

// readSheetRows 打开工作簿并读取第一个 Sheet 的全部行。
// 所有电子表格数据源都只看第一个 Sheet。
func readSheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开文件 %s 失败: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("文件 %s 不含任何 Sheet", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取 Sheet %q 失败: %w", sheets[0], err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("文件 %s 的 Sheet %q 没有表头行", path, sheets[0])
	}
	return rows, nil
}
