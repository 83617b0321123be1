// Package planner 串起一次完整的排位运行：
// 解析数据源 → 构建记录集 → 判定并标注地图 → 一次性写出结果。
package planner

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhogstrom/ess-arbetsschema/internal/annotator"
	"github.com/jhogstrom/ess-arbetsschema/internal/config"
	"github.com/jhogstrom/ess-arbetsschema/internal/model"
	"github.com/jhogstrom/ess-arbetsschema/internal/parser"
	"github.com/jhogstrom/ess-arbetsschema/internal/pptx"
	"github.com/jhogstrom/ess-arbetsschema/internal/resolver"
	"github.com/jhogstrom/ess-arbetsschema/internal/util"
)

// Coordinator 运行协调器
type Coordinator struct {
	cfg    *config.AppConfig
	logger *log.Logger
}

// New 创建协调器
func New(cfg *config.AppConfig, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{cfg: cfg, logger: logger}
}

// Options 一次运行的选项。文件字段留空时用配置里的模式。
type Options struct {
	MapFile       string
	RequestsFile  string
	MembersFile   string
	ExMembersFile string
	OnLandFile    string
	ScheduledFile string
	ColorsFile    string
	OutFile       string
	Year          int    // 0 表示当前年
	Revision      string // 地图版本号
	UpdateBoat    int    // >0 时启用单点更新模式，只动这一个会员的场地
}

// RunReport 一次运行的汇总
type RunReport struct {
	RunID    string
	Year     int
	OutFile  string
	Sources  []*parser.SourceReport
	Annotate *annotator.AnnotateReport
	Warnings []string
	Duration time.Duration
}

// Run 执行一次完整运行。
// 写出只发生在最后一步：中途任何错误都会让之前的产物保持原样。
func (c *Coordinator) Run(opts Options) (*RunReport, error) {
	start := time.Now()

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	report := &RunReport{
		RunID: uuid.NewString(),
		Year:  year,
	}

	mapPath, err := util.FindFile(orDefault(opts.MapFile, c.cfg.Files.Map), c.cfg.Dirs.Templates)
	if err != nil {
		return nil, fmt.Errorf("地图文件: %w", err)
	}
	c.logger.Printf("地图文件: %s", mapPath)

	doc, err := pptx.Open(mapPath)
	if err != nil {
		return nil, err
	}
	slide, err := doc.Slide(1)
	if err != nil {
		return nil, err
	}

	records, err := c.loadRecords(opts, year, report)
	if err != nil {
		return nil, err
	}

	colors := c.loadColors(opts.ColorsFile)

	if opts.UpdateBoat > 0 {
		// 单点更新：绕过判定，其余形状原样放过
		annReport, err := annotator.ForceAssign(slide, records, opts.UpdateBoat, colors)
		if err != nil {
			return nil, err
		}
		report.Annotate = annReport
	} else {
		res := resolver.New(records)
		ann := annotator.New(res, colors, c.logger)
		report.Annotate = ann.Annotate(slide)
		ann.UpdateLegend(slide)
		boats := report.Annotate.Spots - report.Annotate.Counts[model.StatusUnknown]
		ann.UpdateRevision(slide, orDefault(opts.Revision, "1"), boats, time.Now())
	}

	outFile := opts.OutFile
	if outFile == "" {
		outFile = filepath.Join(c.cfg.Dirs.Stage, fmt.Sprintf("varvskarta %d.pptx", year))
	}
	if err := util.EnsureDir(filepath.Dir(outFile)); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := doc.Save(outFile); err != nil {
		return nil, err
	}

	report.OutFile = outFile
	report.Warnings = append(report.Warnings, report.Annotate.Warnings...)
	for _, src := range report.Sources {
		for _, id := range src.Duplicates {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: 会员号 %d 重复出现", src.File, id))
		}
	}
	report.Duration = time.Since(start)
	return report, nil
}

// loadRecords 解析数据源并构建记录集。
// 单点更新模式只需要会员表，其余来源全部跳过。
func (c *Coordinator) loadRecords(opts Options, year int, report *RunReport) (*model.RecordSet, error) {
	records := model.NewRecordSet(year)
	dir := c.cfg.Dirs.BoatInfo

	membersPath, err := util.FindFile(orDefault(opts.MembersFile, c.cfg.Files.Members), dir)
	if err != nil {
		return nil, fmt.Errorf("会员表: %w", err)
	}
	members, srcReport, err := parser.ReadMembers(membersPath)
	if err != nil {
		return nil, err
	}
	records.Members = members
	report.Sources = append(report.Sources, srcReport)
	c.logger.Printf("会员表 %s: %d 条记录", membersPath, len(members))

	if opts.UpdateBoat > 0 {
		return records, nil
	}

	requestsPath, err := util.FindFile(orDefault(opts.RequestsFile, c.cfg.Files.Requests), dir)
	if err != nil {
		return nil, fmt.Errorf("申请表: %w", err)
	}
	requests, srcReport, err := parser.ReadRequests(requestsPath)
	if err != nil {
		return nil, err
	}
	records.Requests = requests
	report.Sources = append(report.Sources, srcReport)

	exPath, err := util.FindFile(orDefault(opts.ExMembersFile, c.cfg.Files.ExMembers), dir)
	if err != nil {
		return nil, fmt.Errorf("退会名单: %w", err)
	}
	exMembers, srcReport, err := parser.ReadExMembers(exPath)
	if err != nil {
		return nil, err
	}
	records.ExMembers = exMembers
	report.Sources = append(report.Sources, srcReport)

	onLandPath, err := util.FindFile(orDefault(opts.OnLandFile, c.cfg.Files.OnLand), dir)
	if err != nil {
		return nil, fmt.Errorf("上岸名单: %w", err)
	}
	onLand, srcReport, err := parser.ReadOnLand(onLandPath, year)
	if err != nil {
		return nil, err
	}
	records.OnLand = onLand
	report.Sources = append(report.Sources, srcReport)

	scheduledPath, err := util.FindFile(orDefault(opts.ScheduledFile, c.cfg.Files.Scheduled), dir)
	if err != nil {
		return nil, fmt.Errorf("吊装名单: %w", err)
	}
	scheduled, srcReport, err := parser.ReadScheduled(scheduledPath)
	if err != nil {
		return nil, err
	}
	records.Scheduled = scheduled
	report.Sources = append(report.Sources, srcReport)

	return records, nil
}

// loadColors 加载配色。配色文件可选，出错时退回默认配色继续运行。
func (c *Coordinator) loadColors(override string) model.ColorTable {
	path, err := util.FindFile(orDefault(override, c.cfg.Files.Colors), c.cfg.Dirs.Templates)
	if err != nil {
		return model.DefaultColors()
	}
	colors, err := model.LoadColorTable(path)
	if err != nil {
		c.logger.Printf("配色文件不可用，使用默认配色: %v", err)
	}
	return colors
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
