package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jhogstrom/ess-arbetsschema/internal/config"
	"github.com/jhogstrom/ess-arbetsschema/internal/schedule"
	"github.com/jhogstrom/ess-arbetsschema/internal/util"
)

var (
	file   = flag.String("file", "", "预约导出表（xlsx，支持通配符，默认取配置）")
	outDir = flag.String("outdir", "", "班次表输出目录")
	header = flag.String("header", "", "报表标题")
	year   = flag.Int("year", 0, "年份（默认当年）")
)

// artifactPaths 一个日期对应的三个产物：班次表、地图副本与收件人名单
func artifactPaths(outDir, date string) (xlsx, mapCopy, emails string) {
	base := filepath.Join(outDir, "Förarschema ESS "+date)
	return base + ".xlsx", base + ".pptx", base + ".email.txt"
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "skiftschema: ", log.LstdFlags)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}
	if *outDir == "" {
		*outDir = cfg.Dirs.OutDir
	}
	if *header == "" {
		*header = cfg.Schedule.Header
	}
	if *year == 0 {
		*year = time.Now().Year()
	}

	path, err := util.FindFile(orDefault(*file, cfg.Schedule.File), cfg.Dirs.Reports)
	if err != nil {
		logger.Fatalf("预约表: %v", err)
	}
	logger.Printf("读取预约表 %s", path)

	rows, report, err := schedule.ReadSchedule(path)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if report.Skipped > 0 {
		logger.Printf("跳过 %d 行无法解析的预约", report.Skipped)
	}

	names := schedule.NamesForYear(
		cfg.Schedule.BoatSchedule, cfg.Schedule.WorkSchedule, cfg.Schedule.ForemanSchedule, *year)
	dates := schedule.LaunchDates(rows, names.Boat, *year)
	if len(dates) == 0 {
		logger.Fatalf("预约表里没有 %q 的日期", names.Boat)
	}

	if err := util.EnsureDir(*outDir); err != nil {
		logger.Fatalf("创建输出目录失败: %v", err)
	}
	if err := util.EnsureDir(cfg.Dirs.Stage); err != nil {
		logger.Fatalf("创建 stage 目录失败: %v", err)
	}

	// 地图模板可选：找不到就只出班次表，不中断运行
	mapPath, mapErr := util.FindFile(cfg.Files.Map, cfg.Dirs.Templates)
	if mapErr != nil {
		logger.Printf("找不到地图模板，跳过地图副本: %v", mapErr)
	}

	manifest := schedule.NewManifest(cfg.Schedule.ParentFolderID)
	now := time.Now()
	today := now.Format("2006-01-02")
	var missingForeman []string

	for _, date := range dates {
		xlsxPath, mapCopyPath, emailPath := artifactPaths(*outDir, date)

		if date < today {
			// 已过去的日期：清掉旧产物，不再生成
			for _, p := range []string{xlsxPath, mapCopyPath, emailPath} {
				if err := os.Remove(p); err == nil {
					logger.Printf("删除过期产物 %s", p)
				}
			}
			continue
		}

		dayReport := schedule.BuildReport(rows, date, names)
		if err := dayReport.WriteXLSX(xlsxPath, *header, now); err != nil {
			logger.Fatalf("%v", err)
		}
		if err := dayReport.WriteEmailList(emailPath); err != nil {
			logger.Fatalf("%v", err)
		}
		if mapErr == nil {
			if err := dayReport.WriteHighlightedMap(mapPath, mapCopyPath, logger); err != nil {
				logger.Fatalf("%v", err)
			}
			manifest.Add(date, xlsxPath, mapCopyPath, emailPath)
		} else {
			manifest.Add(date, xlsxPath, emailPath)
		}

		fmt.Printf("%s: %d båtar, %d arbetspass, %d förmän\n",
			date, len(dayReport.Boats), len(dayReport.Work), len(dayReport.Foremen))
		if len(dayReport.Foremen) == 0 {
			missingForeman = append(missingForeman, date)
		}
	}

	for _, issue := range schedule.FindBalanceIssues(rows, names, now) {
		logger.Printf("配比: %s", issue)
	}
	for _, d := range missingForeman {
		logger.Printf("警告: %s 没有安排工头!", d)
	}

	manifestPath := filepath.Join(cfg.Dirs.Stage, "generated_files.json")
	if err := manifest.Save(manifestPath); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("产物清单: %s", manifestPath)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
