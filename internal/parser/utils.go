package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsPattern    = regexp.MustCompile(`\d+`)
	nonDigitsPattern = regexp.MustCompile(`\D`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// NormalizeColumnName 规范化列名：去除首尾空白与换行/制表符，压缩连续空格。
// 列名内部的单个空格保留（如 "Längd (båt)"）。
func NormalizeColumnName(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	name = spacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// ParseMemberID 把单元格内容解析为会员号。
// 依次尝试整数、整值浮点数（Excel 常把数字导出成 "42.0"），
// 最后剔除所有非数字字符再试一次（原始数据偶见 "42 " / "nr 42"）。
func ParseMemberID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id, true
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		if f == math.Trunc(f) && f > 0 {
			return int(f), true
		}
		return 0, false
	}
	stripped := nonDigitsPattern.ReplaceAllString(s, "")
	if stripped == "" {
		return 0, false
	}
	id, err := strconv.Atoi(stripped)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FirstInt 返回一行文字中的第一个整数（用于退会名单等自由文本行）
func FirstInt(line string) (int, bool) {
	match := digitsPattern.FindString(line)
	if match == "" {
		return 0, false
	}
	id, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseDimension 解析船长/船宽。瑞典语导出用逗号作小数点。
func ParseDimension(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

// Cell 越界安全地取一行中的某列
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
