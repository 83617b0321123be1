package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest 产物清单（generated_files.json）。
// 这是和邮件/上传脚本之间的交接契约：本工具只生成文件，投递由它们负责。
type Manifest struct {
	RunID          string              `json:"run_id"`
	GeneratedAt    string              `json:"generated_at"`
	ParentFolderID string              `json:"parent_folder_id"`
	Files          map[string][]string `json:"files"`
}

// NewManifest 创建带运行标识的空清单
func NewManifest(parentFolderID string) *Manifest {
	return &Manifest{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().Format(time.RFC3339),
		ParentFolderID: parentFolderID,
		Files:          make(map[string][]string),
	}
}

// Add 记录某个日期生成的产物
func (m *Manifest) Add(date string, files ...string) {
	m.Files[date] = append(m.Files[date], files...)
}

// Save 写出清单
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入产物清单 %s 失败: %w", path, err)
	}
	return nil
}
