package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Status 场地判定状态
type Status string

const (
	StatusReserved   Status = "reserved"    // 已确认保留
	StatusDeclined   Status = "declined"    // 已弃置（或申请了别的场地）
	StatusMemberLeft Status = "member_left" // 会员已退会
	StatusOnLand     Status = "on_land"     // 船已在当年上岸
	StatusUnknown    Status = "unknown"     // 无法判定
)

// AllStatuses 图例顺序
var AllStatuses = []Status{
	StatusReserved,
	StatusDeclined,
	StatusMemberLeft,
	StatusOnLand,
	StatusUnknown,
}

// Valid 是否为已知状态
func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// RGB 填充色
type RGB struct {
	R, G, B uint8
}

// Hex 返回 RRGGBB 形式（pptx srgbClr 格式）
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ColorTable 状态到填充色的映射
type ColorTable map[Status]RGB

// DefaultColors 内置默认配色
func DefaultColors() ColorTable {
	return ColorTable{
		StatusReserved:   {214, 245, 214},
		StatusDeclined:   {255, 230, 230},
		StatusMemberLeft: {255, 153, 255},
		StatusOnLand:     {230, 230, 255},
		StatusUnknown:    {255, 255, 255},
	}
}

// LoadColorTable 加载外部配色文件（JSON，值为 RGB 三元组）并叠加在默认配色上。
// 文件不存在时静默使用默认配色；未知键忽略；文件格式错误时返回默认配色与错误，
// 由调用方记录后继续运行。
func LoadColorTable(path string) (ColorTable, error) {
	colors := DefaultColors()
	if path == "" {
		return colors, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return colors, nil
		}
		return colors, fmt.Errorf("读取配色文件失败: %w", err)
	}

	var user map[string][]int
	if err := json.Unmarshal(data, &user); err != nil {
		return colors, fmt.Errorf("解析配色文件 %s 失败: %w", path, err)
	}

	for key, triple := range user {
		status := Status(key)
		if !status.Valid() {
			continue
		}
		if len(triple) != 3 {
			return colors, fmt.Errorf("配色文件 %s: 键 %q 不是 RGB 三元组", path, key)
		}
		for _, v := range triple {
			if v < 0 || v > 255 {
				return colors, fmt.Errorf("配色文件 %s: 键 %q 的分量 %d 超出 0-255", path, key, v)
			}
		}
		colors[status] = RGB{uint8(triple[0]), uint8(triple[1]), uint8(triple[2])}
	}

	return colors, nil
}
