package annotator

import (
	"errors"
	"fmt"

	"github.com/jhogstrom/ess-arbetsschema/internal/model"
	"github.com/jhogstrom/ess-arbetsschema/internal/pptx"
)

var (
	// ErrMemberNotFound 指定会员不在会员表中
	ErrMemberNotFound = errors.New("会员不在会员表中")
	// ErrSpotNotFound 会员登记的场地在地图上找不到对应形状
	ErrSpotNotFound = errors.New("地图上没有对应场地")
)

// ForceAssign 单点更新：把指定会员强制标为已保留，写到其登记场地的形状上。
// 完全绕过申请/退会/上岸/预约的判定，只查会员表。
// 地图上的其它形状一概不动。
func ForceAssign(slide *pptx.Slide, records *model.RecordSet, memberID int, colors model.ColorTable) (*AnnotateReport, error) {
	member, ok := records.Member(memberID)
	if !ok {
		return nil, fmt.Errorf("会员 %d: %w", memberID, ErrMemberNotFound)
	}
	if member.Spot == "" {
		return nil, fmt.Errorf("会员 %d 没有登记场地: %w", memberID, ErrSpotNotFound)
	}

	for _, shape := range slide.Shapes() {
		ref, ok := ParseSpotText(shape.Text())
		if !ok {
			continue
		}
		if !model.SameSpot(ref.Label, member.Spot) {
			continue
		}

		shape.SetFill(colors[model.StatusReserved].Hex())
		shape.SetName("Spot: " + ref.Label)
		shape.SetText(spotCaption(ref.Label, member))

		report := &AnnotateReport{
			Spots:  1,
			Counts: map[model.Status]int{model.StatusReserved: 1},
		}
		return report, nil
	}

	return nil, fmt.Errorf("会员 %d 的场地 %q: %w", memberID, member.Spot, ErrSpotNotFound)
}
