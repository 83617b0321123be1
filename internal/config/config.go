package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Files    FilesConfig    `toml:"files"`
	Dirs     DirsConfig     `toml:"dirs"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// FilesConfig 各数据源的文件名或通配符模式
type FilesConfig struct {
	Map       string `toml:"map"`       // 场地地图（pptx）
	Requests  string `toml:"requests"`  // 场地申请表
	Members   string `toml:"members"`   // 会员导出表
	ExMembers string `toml:"exmembers"` // 退会名单（纯文本）
	OnLand    string `toml:"onland"`    // 已上岸名单
	Scheduled string `toml:"scheduled"` // 吊装预约名单
	Colors    string `toml:"colors"`    // 配色覆盖文件（JSON，可选）
}

// DirsConfig 查找目录
type DirsConfig struct {
	BoatInfo  string `toml:"boatinfo"`  // 数据源所在目录
	Templates string `toml:"templates"` // 地图模板目录
	Stage     string `toml:"stage"`     // 输出目录
	Reports   string `toml:"reports"`   // 预约导出表目录
	OutDir    string `toml:"outdir"`    // 班次表输出目录
}

// ScheduleConfig 班次表工具的配置
type ScheduleConfig struct {
	File            string `toml:"file"`             // 预约导出表的文件名/模式
	Header          string `toml:"header"`           // 报表标题
	BoatSchedule    string `toml:"boat_schedule"`    // 吊装班次名（%d 占位年份）
	WorkSchedule    string `toml:"work_schedule"`    // 工作班次名
	ForemanSchedule string `toml:"foreman_schedule"` // 工头班次名
	ParentFolderID  string `toml:"parent_folder_id"` // 写入产物清单，供上传脚本使用
}

// DefaultConfig 默认配置，对应俱乐部现行的导出文件命名
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Files: FilesConfig{
			Map:       "*karta*.pptx",
			Requests:  "Anmälningar *.xlsx",
			Members:   "Alla_medlemmar_inkl_båtinfo_*.xlsx",
			ExMembers: "ex-members.txt",
			OnLand:    "sommarliggare.xlsx",
			Scheduled: "torrsättning.xlsx",
			Colors:    "colors.json",
		},
		Dirs: DirsConfig{
			BoatInfo:  "boatinfo",
			Templates: "templates",
			Stage:     "stage",
			Reports:   "report",
			OutDir:    "schema",
		},
		Schedule: ScheduleConfig{
			File:            "*.xlsx",
			Header:          "Schema ESS",
			BoatSchedule:    "Torrsättning %d",
			WorkSchedule:    "Arbetspass torrsättning %d",
			ForemanSchedule: "Förmanspass till torrsättning %d (för styrelsen)",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录下的 config.toml 加载配置。
// 文件不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadConfigFrom 从指定路径加载配置
func LoadConfigFrom(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 环境变量覆盖（用于测试/本地运行）
	if v := os.Getenv("ESS_BOATINFO_DIR"); v != "" {
		config.Dirs.BoatInfo = v
	}
	if v := os.Getenv("ESS_TEMPLATES_DIR"); v != "" {
		config.Dirs.Templates = v
	}

	return config, nil
}
