package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jhogstrom/ess-arbetsschema/internal/config"
	"github.com/jhogstrom/ess-arbetsschema/internal/model"
	"github.com/jhogstrom/ess-arbetsschema/internal/planner"
)

var (
	mapFile    = flag.String("file", "", "地图文件（pptx，支持通配符，默认取配置）")
	requests   = flag.String("requests", "", "场地申请表（xlsx）")
	members    = flag.String("members", "", "会员导出表（xlsx）")
	exMembers  = flag.String("exmembers", "", "退会名单（文本文件）")
	onLand     = flag.String("onland", "", "已上岸名单（xlsx）")
	scheduled  = flag.String("scheduled", "", "吊装预约名单（xlsx）")
	colorsFile = flag.String("colors", "", "配色覆盖文件（JSON，可选）")
	outFile    = flag.String("outfile", "", "输出文件名")
	year       = flag.Int("year", 0, "年份（默认当年）")
	revision   = flag.String("revision", "1", "地图版本号")
	updateBoat = flag.Int("updateboat", 0, "单点更新：只把该会员标到其登记场地上")
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "varvskarta: ", log.LstdFlags)

	fmt.Println("==========================================")
	fmt.Println("  ESS 冬季船位排位工具")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	coordinator := planner.New(cfg, logger)
	report, err := coordinator.Run(planner.Options{
		MapFile:       *mapFile,
		RequestsFile:  *requests,
		MembersFile:   *members,
		ExMembersFile: *exMembers,
		OnLandFile:    *onLand,
		ScheduledFile: *scheduled,
		ColorsFile:    *colorsFile,
		OutFile:       *outFile,
		Year:          *year,
		Revision:      *revision,
		UpdateBoat:    *updateBoat,
	})
	if err != nil {
		logger.Printf("运行失败，未写出任何结果: %v", err)
		os.Exit(1)
	}

	fmt.Printf("\n运行 %s 完成（%s）\n", report.RunID, report.Duration.Round(1e6))
	fmt.Printf("输出文件: %s\n", report.OutFile)
	fmt.Printf("识别场地: %d\n", report.Annotate.Spots)
	for _, status := range model.AllStatuses {
		if n := report.Annotate.Counts[status]; n > 0 {
			fmt.Printf("  %-12s %d\n", status, n)
		}
	}
	for _, src := range report.Sources {
		if src.HasIssues() {
			fmt.Printf("数据源 %s: 跳过 %d 行，重复会员号 %d 个\n", src.File, src.Skipped, len(src.Duplicates))
		}
	}
	for _, w := range report.Warnings {
		logger.Printf("警告: %s", w)
	}
}
