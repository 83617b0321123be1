package parser

import (
	"fmt"
	"strings"

	"github.com/jhogstrom/ess-arbetsschema/internal/model"
)

// 申请表列名。申请表由报名系统导出，除这三列外的内容视为不透明。
const (
	colRequestMemberID = "Medlemsnummer"
	colRequestSpot     = "Plats"
	colRequestUptake   = "Upptagning"
	colRequestComment  = "Kommentar medlem"
)

// NoSpotAnswer 报名问卷中"不要场地"的固定答案
const NoSpotAnswer = "Jag vill INTE ta upp min båt i år och vill INTE ha nån vinterplats hos ESS"

// ReadRequests 读取场地申请表。
// 选择了 NoSpotAnswer 或未填场地的申请记为明确弃置。
func ReadRequests(path string) (map[int]*model.Request, *SourceReport, error) {
	rows, err := readSheetRows(path)
	if err != nil {
		return nil, nil, err
	}

	headers := NewHeaderMap(rows[0])
	if err := headers.Require(colRequestMemberID); err != nil {
		return nil, nil, fmt.Errorf("申请表 %s: %w", path, err)
	}

	idCol, _ := headers.Column(colRequestMemberID)
	spotCol, hasSpot := headers.Column(colRequestSpot)
	uptakeCol, hasUptake := headers.Column(colRequestUptake)
	commentCol, hasComment := headers.Column(colRequestComment)

	report := &SourceReport{File: path, Rows: len(rows) - 1}
	requests := make(map[int]*model.Request)

	for _, row := range rows[1:] {
		id, ok := ParseMemberID(Cell(row, idCol))
		if !ok {
			report.Skipped++
			continue
		}
		if _, exists := requests[id]; exists {
			report.noteDuplicate(id)
			continue
		}

		req := &model.Request{MemberID: id}
		if hasSpot {
			req.Spot = Cell(row, spotCol)
		}
		if hasUptake && strings.EqualFold(Cell(row, uptakeCol), NoSpotAnswer) {
			req.Declined = true
			req.Spot = ""
		}
		if req.Spot == "" {
			req.Declined = true
		}
		if hasComment {
			req.Comment = Cell(row, commentCol)
		}

		requests[id] = req
		report.Imported++
	}

	return requests, report, nil
}
