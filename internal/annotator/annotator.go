// Package annotator 把场地判定结果落到地图上：
// 遍历幻灯片上的场地形状，套用状态颜色与标注文字。
package annotator

import (
	"fmt"
	"log"
	"time"

	"github.com/jhogstrom/ess-arbetsschema/internal/model"
	"github.com/jhogstrom/ess-arbetsschema/internal/pptx"
	"github.com/jhogstrom/ess-arbetsschema/internal/resolver"
)

// Annotator 地图标注器。地图文件的唯一修改方。
type Annotator struct {
	res    *resolver.Resolver
	colors model.ColorTable
	logger *log.Logger
}

// AnnotateReport 一次标注的汇总
type AnnotateReport struct {
	Spots    int // 识别为场地的形状数
	Counts   map[model.Status]int
	Warnings []string
}

// New 创建标注器
func New(res *resolver.Resolver, colors model.ColorTable, logger *log.Logger) *Annotator {
	if logger == nil {
		logger = log.Default()
	}
	return &Annotator{res: res, colors: colors, logger: logger}
}

// Annotate 遍历幻灯片上的形状并标注所有可识别的场地。
// 第一行不是场地编号的形状原样放过，不计入统计。
func (a *Annotator) Annotate(slide *pptx.Slide) *AnnotateReport {
	report := &AnnotateReport{Counts: make(map[model.Status]int)}

	for _, shape := range slide.Shapes() {
		ref, ok := ParseSpotText(shape.Text())
		if !ok {
			continue
		}
		report.Spots++

		res := a.res.Resolve(ref.Label, ref.MemberID)
		report.Counts[res.Status]++

		a.apply(shape, ref.Label, res)
		a.logger.Printf("场地 %s: %s (规则 %s)", ref.Label, res.Status, res.Rule)
	}

	report.Warnings = append(report.Warnings, a.res.Warnings()...)
	return report
}

// apply 把单个判定结果写到形状上。
// 文字重写保持第一行是原场地编号，保证重复运行解析结果不变。
func (a *Annotator) apply(shape *pptx.Shape, label string, res resolver.Resolution) {
	shape.SetFill(a.colors[res.Status].Hex())
	shape.SetName("Spot: " + label)

	// 退会与无法判定的场地不动原有文字，留给操作者人工核对
	if res.Member == nil || res.Status == model.StatusMemberLeft || res.Status == model.StatusUnknown {
		return
	}
	shape.SetText(spotCaption(label, res.Member))
}

// clearanceMargin 标注显示的是所需空间而不是船体尺寸：长宽各加 1 米间隙
const clearanceMargin = 1.0

// spotCaption 场地标注文字：编号、会员号+姓氏、所需空间
func spotCaption(label string, m *model.Member) string {
	return fmt.Sprintf("%s\n%d %s\n%.1fx%.1f", label, m.ID, m.DisplayName(),
		m.Length+clearanceMargin, m.Width+clearanceMargin)
}

// UpdateLegend 按配色表更新图例形状（"Legend: <status>"），缺失的图例只告警
func (a *Annotator) UpdateLegend(slide *pptx.Slide) {
	found := make(map[string]bool)
	for _, shape := range slide.Shapes() {
		found[shape.Name()] = true
	}

	for _, status := range model.AllStatuses {
		name := "Legend: " + string(status)
		if !found[name] {
			a.logger.Printf("图例形状 %q 不存在", name)
			continue
		}
		for _, shape := range slide.Shapes() {
			if shape.Name() == name {
				shape.SetFill(a.colors[status].Hex())
				break
			}
		}
	}
}

// UpdateRevision 更新名为 Revision 的版本信息形状
func (a *Annotator) UpdateRevision(slide *pptx.Slide, revision string, boats int, now time.Time) {
	for _, shape := range slide.Shapes() {
		if shape.Name() != "Revision" {
			continue
		}
		shape.SetText(fmt.Sprintf("Revision %s\nBåtar: %d\n%s",
			revision, boats, now.Format("2006-01-02 15:04")))
		return
	}
	a.logger.Printf("版本信息形状 \"Revision\" 不存在")
}
