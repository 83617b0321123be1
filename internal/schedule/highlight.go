package schedule

import (
	"log"

	"github.com/jhogstrom/ess-arbetsschema/internal/annotator"
	"github.com/jhogstrom/ess-arbetsschema/internal/model"
	"github.com/jhogstrom/ess-arbetsschema/internal/pptx"
)

// highlightColor 当天要吊的船在地图副本上的标色
var highlightColor = model.RGB{R: 255, G: 255, B: 26}

// noteShapes 地图模板上的工作注记，副本发出去之前摘掉
var noteShapes = []string{"Anteckning 1", "Anteckning 2", "Anteckning 3"}

// WriteHighlightedMap 生成当天的地图副本：
// 当天吊装班次的船按会员号在地图上找到并标成黄色，注记形状移除，
// 其余形状一概不动。模板每次重新打开，不会带上前一天的标色。
func (r *Report) WriteHighlightedMap(mapPath, outPath string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	doc, err := pptx.Open(mapPath)
	if err != nil {
		return err
	}
	slide, err := doc.Slide(1)
	if err != nil {
		return err
	}

	boats := make(map[int]struct{}, len(r.Boats))
	for _, b := range r.Boats {
		boats[b.MemberID] = struct{}{}
	}

	marked := make(map[int]struct{})
	for _, shape := range slide.Shapes() {
		ref, ok := annotator.ParseSpotText(shape.Text())
		if !ok || ref.MemberID == 0 {
			continue
		}
		if _, scheduled := boats[ref.MemberID]; !scheduled {
			continue
		}
		shape.SetFill(highlightColor.Hex())
		marked[ref.MemberID] = struct{}{}
	}
	for _, b := range r.Boats {
		if _, ok := marked[b.MemberID]; !ok {
			logger.Printf("会员 %d 当天有吊装班次，但地图上找不到对应场地", b.MemberID)
		}
	}

	for _, shape := range slide.Shapes() {
		for _, name := range noteShapes {
			if shape.Name() == name {
				shape.Remove()
				break
			}
		}
	}

	return doc.Save(outPath)
}
