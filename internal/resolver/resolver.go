package resolver

import (
	"github.com/jhogstrom/ess-arbetsschema/internal/model"
)

// Resolver 场地状态判定器。
// 对每个 场地编号+船参照 组合依序套用规则链，保证恰好产生一个状态。
type Resolver struct {
	records  *model.RecordSet
	warnings []string
}

// Resolution 单个场地的判定结果
type Resolution struct {
	Status model.Status
	Rule   RuleKind      // 命中的规则，便于逐条审计
	Member *model.Member // 会员表中存在时附带会员记录
}

// New 基于一次运行的记录集创建判定器
func New(records *model.RecordSet) *Resolver {
	return &Resolver{records: records}
}

// Records 返回底层记录集（只读）
func (r *Resolver) Records() *model.RecordSet {
	return r.records
}

// Resolve 判定一个场地的状态。memberID<=0 表示形状不含船参照。
// 规则链保证总有一条规则命中，绝不返回空状态。
func (r *Resolver) Resolve(spotLabel string, memberID int) Resolution {
	for _, rl := range rules {
		if status, ok := rl.apply(r, spotLabel, memberID); ok {
			res := Resolution{Status: status, Rule: rl.kind}
			if m, found := r.records.Member(memberID); found {
				res.Member = m
			}
			return res
		}
	}
	// 规则链以兜底规则结束，到不了这里
	return Resolution{Status: model.StatusUnknown, Rule: RuleNoRequest}
}

// Warnings 返回累计的一致性警告
func (r *Resolver) Warnings() []string {
	return r.warnings
}
