// Package schedule 生成吊装日的班次表：
// 按日期切分预约导出表，每个未来日期产出一份 Excel 报表与收件人名单。
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhogstrom/ess-arbetsschema/internal/parser"
)

// 预约导出表的列名
const (
	colSchema   = "Schema"
	colDate     = "Datum"
	colPassTime = "Pass tid"
	colFullName = "Medlem (fullt namn)"
	colMobile   = "Mobil"
	colSpot     = "Plats"
	colModel    = "Modell"
	colComment  = "Kommentar medlem"
	colEmail    = "Epost"
	colESK      = "inställningESK"
	colDUSK1    = "inställningDUSK"
	colDUSK2    = "InställningDUSK2"
)

// Row 预约导出表中一条已预约的班次
type Row struct {
	Schema   string
	Date     string // YYYY-MM-DD
	PassTime string
	MemberID int
	Name     string
	Mobile   string
	Spot     string
	Model    string
	Comment  string
	Email    string
	ESK      string
	DUSK1    string
	DUSK2    string
}

// Settings 拼接起吊设置（"ESK: x, DUSK1: y, DUSK2: z"），全空返回空串
func (r *Row) Settings() string {
	var parts []string
	if r.ESK != "" {
		parts = append(parts, "ESK: "+r.ESK)
	}
	if r.DUSK1 != "" {
		parts = append(parts, "DUSK1: "+r.DUSK1)
	}
	if r.DUSK2 != "" {
		parts = append(parts, "DUSK2: "+r.DUSK2)
	}
	return strings.Join(parts, ", ")
}

// Names 三种班次在导出表 Schema 列中的名称
type Names struct {
	Boat    string // 吊装班次
	Work    string // 工作班次
	Foreman string // 工头班次
}

// NamesForYear 按年份展开配置里的班次名模板
func NamesForYear(boatTmpl, workTmpl, foremanTmpl string, year int) Names {
	return Names{
		Boat:    fmt.Sprintf(boatTmpl, year),
		Work:    fmt.Sprintf(workTmpl, year),
		Foreman: fmt.Sprintf(foremanTmpl, year),
	}
}

// fullNamePattern 会员姓名单元格格式："<namn> (<medlemsnummer>)"
var fullNamePattern = regexp.MustCompile(`^(.*)\((\d+)\)\s*$`)

// splitFullName 把 "Anna Svensson (42)" 拆成姓名与会员号
func splitFullName(s string) (name string, id int, ok bool) {
	m := fullNamePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return strings.TrimSpace(s), 0, false
	}
	id, err := strconv.Atoi(m[2])
	if err != nil {
		return strings.TrimSpace(m[1]), 0, false
	}
	return strings.TrimSpace(m[1]), id, true
}

// normalizeMobile 手机号经 Excel 导出常变成 "46701234567.0"，还原成整数字符串
func normalizeMobile(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// ReadSchedule 读取预约导出表。姓名为空的行是未被预约的空班次，直接略过。
func ReadSchedule(path string) ([]*Row, *parser.SourceReport, error) {
	rows, headers, err := parser.ReadSheet(path)
	if err != nil {
		return nil, nil, err
	}
	if err := headers.Require(colSchema, colDate, colPassTime, colFullName); err != nil {
		return nil, nil, fmt.Errorf("预约表 %s: %w", path, err)
	}

	col := func(name string) int {
		idx, _ := headers.Column(name)
		return idx
	}
	get := func(row []string, name string) string {
		idx, ok := headers.Column(name)
		if !ok {
			return ""
		}
		return parser.Cell(row, idx)
	}

	report := &parser.SourceReport{File: path, Rows: len(rows) - 1}
	var result []*Row

	for _, raw := range rows[1:] {
		fullName := parser.Cell(raw, col(colFullName))
		if fullName == "" {
			continue
		}
		name, id, ok := splitFullName(fullName)
		if !ok {
			report.Skipped++
			continue
		}

		result = append(result, &Row{
			Schema:   parser.Cell(raw, col(colSchema)),
			Date:     parser.Cell(raw, col(colDate)),
			PassTime: parser.Cell(raw, col(colPassTime)),
			MemberID: id,
			Name:     name,
			Mobile:   normalizeMobile(get(raw, colMobile)),
			Spot:     get(raw, colSpot),
			Model:    get(raw, colModel),
			Comment:  get(raw, colComment),
			Email:    get(raw, colEmail),
			ESK:      get(raw, colESK),
			DUSK1:    get(raw, colDUSK1),
			DUSK2:    get(raw, colDUSK2),
		})
		report.Imported++
	}

	return result, report, nil
}

// LaunchDates 收集指定年份里吊装班次出现的所有日期，升序
func LaunchDates(rows []*Row, boatSchedule string, year int) []string {
	seen := make(map[string]struct{})
	prefix := fmt.Sprintf("%d-", year)
	for _, r := range rows {
		if !strings.HasPrefix(r.Date, prefix) {
			continue
		}
		if !strings.Contains(strings.ToUpper(r.Schema), strings.ToUpper(boatSchedule)) {
			continue
		}
		seen[r.Date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// RowsFor 过滤出某天某种班次的行，按班次时间排序
func RowsFor(rows []*Row, date, schema string) []*Row {
	var result []*Row
	for _, r := range rows {
		if r.Date == date && strings.EqualFold(r.Schema, schema) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PassTime < result[j].PassTime
	})
	return result
}

// Report 某一天的班次表
type Report struct {
	Date    string
	Boats   []*Row
	Work    []*Row
	Foremen []*Row
}

// BuildReport 汇集一天的三种班次
func BuildReport(rows []*Row, date string, names Names) *Report {
	return &Report{
		Date:    date,
		Boats:   RowsFor(rows, date, names.Boat),
		Work:    RowsFor(rows, date, names.Work),
		Foremen: RowsFor(rows, date, names.Foreman),
	}
}

// Emails 当天所有参与者的邮箱，去重排序
func (r *Report) Emails() []string {
	seen := make(map[string]struct{})
	for _, rows := range [][]*Row{r.Boats, r.Work, r.Foremen} {
		for _, row := range rows {
			if row.Email != "" {
				seen[row.Email] = struct{}{}
			}
		}
	}
	emails := make([]string, 0, len(seen))
	for e := range seen {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails
}

// BalanceIssue 人手配比问题
type BalanceIssue struct {
	Date     string
	PassTime string
	Boats    int
	Helpers  int
}

// Understaffed 有船要吊但帮手不足
func (b BalanceIssue) Understaffed() bool {
	return b.Boats > 0 && b.Helpers <= 1
}

// String 操作者可读的描述
func (b BalanceIssue) String() string {
	if b.Understaffed() {
		return fmt.Sprintf("%s %s: saknas folk - %d båtar %d medhjälpare", b.Date, b.PassTime, b.Boats, b.Helpers)
	}
	return fmt.Sprintf("%s %s: överbefolkat - %d båtar %d medhjälpare", b.Date, b.PassTime, b.Boats, b.Helpers)
}

// FindBalanceIssues 检查未来每个班次时段的船数与帮手数配比。
// 有船但帮手不足、或有帮手却没有船的时段都报出来。
func FindBalanceIssues(rows []*Row, names Names, today time.Time) []BalanceIssue {
	type slot struct {
		boats   int
		helpers int
	}
	cutoff := today.Format("2006-01-02")
	slots := make(map[string]*slot)
	var keys []string

	for _, r := range rows {
		if r.Date < cutoff {
			continue
		}
		var isBoat bool
		switch {
		case strings.EqualFold(r.Schema, names.Boat):
			isBoat = true
		case strings.EqualFold(r.Schema, names.Work):
		default:
			continue
		}
		key := r.Date + "\x00" + r.PassTime
		s, ok := slots[key]
		if !ok {
			s = &slot{}
			slots[key] = s
			keys = append(keys, key)
		}
		if isBoat {
			s.boats++
		} else {
			s.helpers++
		}
	}

	sort.Strings(keys)
	var issues []BalanceIssue
	for _, key := range keys {
		s := slots[key]
		parts := strings.SplitN(key, "\x00", 2)
		issue := BalanceIssue{Date: parts[0], PassTime: parts[1], Boats: s.boats, Helpers: s.helpers}
		if (s.boats > 0 && s.helpers <= 1) || (s.boats == 0 && s.helpers > 0) {
			issues = append(issues, issue)
		}
	}
	return issues
}
