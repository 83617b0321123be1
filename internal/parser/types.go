package parser

// SourceReport 单个数据源的解析汇总。
// 可恢复的行级问题只计数不中断，由协调器统一汇报。
type SourceReport struct {
	File       string `json:"file"`
	Rows       int    `json:"rows"`                 // 数据行数（不含表头）
	Imported   int    `json:"imported"`             // 成功规范化的行数
	Skipped    int    `json:"skipped"`              // 缺少会员号等必需字段而跳过的行数
	Duplicates []int  `json:"duplicates,omitempty"` // 同一文件内重复出现的会员号（每个只报一次）
}

// HasIssues 是否存在需要向操作者汇报的问题
func (r *SourceReport) HasIssues() bool {
	return r.Skipped > 0 || len(r.Duplicates) > 0
}

// noteDuplicate 记录重复会员号，每个只记一次
func (r *SourceReport) noteDuplicate(id int) {
	for _, d := range r.Duplicates {
		if d == id {
			return
		}
	}
	r.Duplicates = append(r.Duplicates, id)
}
