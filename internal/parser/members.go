package parser

import (
	"fmt"

	"github.com/jhogstrom/ess-arbetsschema/internal/model"
)

// 会员导出表的固定列名（外部会员系统的导出格式）
const (
	colMemberID  = "Medlemsnr"
	colLength    = "Längd (båt)"
	colWidth     = "Bredd"
	colFirstName = "Förnamn"
	colLastName  = "Efternamn"
	colSpot      = "Plats"
)

// ReadMembers 读取会员导出表并规范化为会员记录。
// 会员号不可解析的行跳过并计数；同一文件内重复的会员号记为一致性问题，
// 保留第一行，运行继续。
func ReadMembers(path string) (map[int]*model.Member, *SourceReport, error) {
	rows, err := readSheetRows(path)
	if err != nil {
		return nil, nil, err
	}

	headers := NewHeaderMap(rows[0])
	if err := headers.Require(colMemberID, colLength, colWidth, colFirstName, colLastName, colSpot); err != nil {
		return nil, nil, fmt.Errorf("会员表 %s: %w", path, err)
	}

	idCol, _ := headers.Column(colMemberID)
	lengthCol, _ := headers.Column(colLength)
	widthCol, _ := headers.Column(colWidth)
	firstCol, _ := headers.Column(colFirstName)
	lastCol, _ := headers.Column(colLastName)
	spotCol, _ := headers.Column(colSpot)

	report := &SourceReport{File: path, Rows: len(rows) - 1}
	members := make(map[int]*model.Member)

	for _, row := range rows[1:] {
		id, ok := ParseMemberID(Cell(row, idCol))
		if !ok {
			report.Skipped++
			continue
		}
		if _, exists := members[id]; exists {
			report.noteDuplicate(id)
			continue
		}

		// 船的尺寸可能缺失（无船会员），记为 0 不跳过
		length, _ := ParseDimension(Cell(row, lengthCol))
		width, _ := ParseDimension(Cell(row, widthCol))

		members[id] = &model.Member{
			ID:        id,
			Length:    length,
			Width:     width,
			FirstName: Cell(row, firstCol),
			LastName:  Cell(row, lastCol),
			Spot:      Cell(row, spotCol),
		}
		report.Imported++
	}

	return members, report, nil
}
