package schedule

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Schema"

// reportStyles 报表用到的单元格样式
type reportStyles struct {
	cell    int // 细边框
	wrap    int // 细边框 + 自动换行
	head    int // 细边框 + 加粗 13 号
	title   int // 加粗 13 号，无边框
	noFrame int // 无边框
}

func newReportStyles(f *excelize.File) (*reportStyles, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	s := &reportStyles{}
	var err error
	if s.cell, err = f.NewStyle(&excelize.Style{Border: border}); err != nil {
		return nil, err
	}
	if s.wrap, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if s.head, err = f.NewStyle(&excelize.Style{
		Border: border,
		Font:   &excelize.Font{Bold: true, Size: 13},
	}); err != nil {
		return nil, err
	}
	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteXLSX 把一天的班次表写成 Excel 报表。
// 版式沿用俱乐部历年的纸面格式：上段吊装班次，下段工作班次与工头班次并排。
func (r *Report) WriteXLSX(path, header string, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	styles, err := newReportStyles(f)
	if err != nil {
		return fmt.Errorf("创建样式失败: %w", err)
	}

	widths := []float64{12, 6, 17, 14, 6, 20, 30, 15}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return err
		}
	}

	set := func(col, row int, value any, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, value)
		if style != 0 {
			_ = f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	// 标题行
	set(1, 1, fmt.Sprintf("%s %s", header, r.Date), styles.title)
	set(7, 1, now.Format("2006-01-02 15:04"), styles.title)

	// 吊装班次表头
	headers := []string{"Pass", "#", "Namn", "Mobil", "Plats", "Båtmodell", "Kommentar", "Inställningar"}
	for i, h := range headers {
		set(i+1, 3, h, styles.head)
	}

	row := 4
	for _, b := range r.Boats {
		set(1, row, b.PassTime, styles.cell)
		set(2, row, b.MemberID, styles.cell)
		set(3, row, b.Name, styles.cell)
		set(4, row, " "+b.Mobile, styles.cell)
		set(5, row, dedupeSpots(b.Spot), styles.cell)
		set(6, row, b.Model, styles.cell)
		set(7, row, b.Comment, styles.wrap)
		set(8, row, b.Settings(), styles.cell)
		row++
	}

	// 工作班次与工头班次并排
	row += 2
	set(1, row, "Arbetspass", styles.head)
	set(2, row, "#", styles.head)
	set(3, row, "Namn", styles.head)
	set(4, row, "Mobil", styles.head)
	set(6, row, "Förmanspass", styles.head)
	set(7, row, "Namn", styles.head)
	set(8, row, "Mobil", styles.head)
	row++

	for i, w := range r.Work {
		set(1, row+i, w.PassTime, styles.cell)
		set(2, row+i, w.MemberID, styles.cell)
		set(3, row+i, w.Name, styles.cell)
		set(4, row+i, " "+w.Mobile, styles.cell)
	}
	for i, fm := range r.Foremen {
		set(6, row+i, fm.PassTime, styles.cell)
		set(7, row+i, fm.Name, styles.cell)
		set(8, row+i, fm.Mobile, styles.cell)
	}
	if len(r.Foremen) == 0 {
		set(7, row, "INGEN FÖRMAN", 0)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("写入报表 %s 失败: %w", path, err)
	}
	return nil
}

// WriteEmailList 把当天的收件人名单写成一行一个邮箱的文本文件
func (r *Report) WriteEmailList(path string) error {
	emails := r.Emails()
	var b strings.Builder
	for _, e := range emails {
		b.WriteString(e)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("写入收件人名单 %s 失败: %w", path, err)
	}
	return nil
}

// dedupeSpots 场地列偶见重复（"A-1, A-1"），去重且保持顺序
func dedupeSpots(s string) string {
	if !strings.Contains(s, ",") {
		return strings.TrimSpace(s)
	}
	seen := make(map[string]struct{})
	var parts []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}
