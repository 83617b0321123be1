package annotator

import (
	"regexp"
	"strings"

	"github.com/jhogstrom/ess-arbetsschema/internal/parser"
)

// SpotRef 从形状文字解析出的场地参照
type SpotRef struct {
	Label    string // 场地编号，如 "B-12"
	MemberID int    // 船参照（会员号），0 表示形状上没有
}

// 场地编号：1-3 个字母（允许瑞典语 ÅÄÖ）+ 可选连字符 + 数字。
// 编号必须独占形状文字的第一行，后续行才允许出现会员号等标注。
var spotLabelPattern = regexp.MustCompile(`^[A-ZÅÄÖa-zåäö]{1,3}-?[0-9]+$`)

// ParseSpotText 解析形状文字，返回 场地编号+船参照。
// 这是地图上唯一的标签解析入口，标注器与单点更新都经由它。
// 第一行不是场地编号的形状不视为场地，原样放过。
func ParseSpotText(text string) (SpotRef, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return SpotRef{}, false
	}

	label := strings.TrimSpace(lines[0])
	if !spotLabelPattern.MatchString(label) {
		return SpotRef{}, false
	}

	ref := SpotRef{Label: label}
	for _, line := range lines[1:] {
		if id, ok := parser.FirstInt(line); ok {
			ref.MemberID = id
			break
		}
	}
	return ref, true
}
