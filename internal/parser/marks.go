package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// 标记类数据源的列名
const (
	colYear       = "År"
	colMarkMember = "Medlemsnr"
)

// ReadExMembers 读取退会名单（纯文本）。
// 以 # 开头的行是注释；其余行取第一个整数作为会员号，行尾自由文本忽略
// （如 "10 har inte kvar sin båt"）。不含整数的行跳过并计数。
func ReadExMembers(path string) (map[int]struct{}, *SourceReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("打开退会名单 %s 失败: %w", path, err)
	}
	defer f.Close()

	report := &SourceReport{File: path}
	ids := make(map[int]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		report.Rows++
		id, ok := FirstInt(line)
		if !ok {
			report.Skipped++
			continue
		}
		if _, exists := ids[id]; exists {
			report.noteDuplicate(id)
			continue
		}
		ids[id] = struct{}{}
		report.Imported++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("读取退会名单 %s 失败: %w", path, err)
	}

	return ids, report, nil
}

// ReadOnLand 读取已上岸名单，只保留指定年份的标记。
// 其它年份的行不算跳过，也不参与重复检查。
func ReadOnLand(path string, year int) (map[int]struct{}, *SourceReport, error) {
	rows, err := readSheetRows(path)
	if err != nil {
		return nil, nil, err
	}

	headers := NewHeaderMap(rows[0])
	if err := headers.Require(colYear, colMarkMember); err != nil {
		return nil, nil, fmt.Errorf("上岸名单 %s: %w", path, err)
	}

	yearCol, _ := headers.Column(colYear)
	idCol, _ := headers.Column(colMarkMember)

	report := &SourceReport{File: path, Rows: len(rows) - 1}
	ids := make(map[int]struct{})

	for _, row := range rows[1:] {
		rowYear, err := strconv.Atoi(Cell(row, yearCol))
		if err != nil || rowYear != year {
			continue
		}
		id, ok := ParseMemberID(Cell(row, idCol))
		if !ok {
			report.Skipped++
			continue
		}
		if _, exists := ids[id]; exists {
			report.noteDuplicate(id)
			continue
		}
		ids[id] = struct{}{}
		report.Imported++
	}

	return ids, report, nil
}

// ReadScheduled 读取吊装预约名单
func ReadScheduled(path string) (map[int]struct{}, *SourceReport, error) {
	rows, err := readSheetRows(path)
	if err != nil {
		return nil, nil, err
	}

	headers := NewHeaderMap(rows[0])
	if err := headers.Require(colMarkMember); err != nil {
		return nil, nil, fmt.Errorf("吊装名单 %s: %w", path, err)
	}

	idCol, _ := headers.Column(colMarkMember)

	report := &SourceReport{File: path, Rows: len(rows) - 1}
	ids := make(map[int]struct{})

	for _, row := range rows[1:] {
		raw := Cell(row, idCol)
		if raw == "" {
			// 预约表常有空行，静默跳过
			continue
		}
		id, ok := ParseMemberID(raw)
		if !ok {
			report.Skipped++
			continue
		}
		if _, exists := ids[id]; exists {
			report.noteDuplicate(id)
			continue
		}
		ids[id] = struct{}{}
		report.Imported++
	}

	return ids, report, nil
}
