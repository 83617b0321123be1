package resolver

import (
	"fmt"

	"github.com/jhogstrom/ess-arbetsschema/internal/model"
)

// RuleKind 判定规则标签，按优先级排列。
// 规则链是显式有序的：前面的规则命中即定，后面的不再参与。
type RuleKind string

const (
	RuleNoBoat        RuleKind = "no_boat"        // 形状不含可识别的船参照
	RuleMemberLeft    RuleKind = "member_left"    // 会员已退会，压过其它一切来源
	RuleOnLand        RuleKind = "on_land"        // 船已在当年上岸
	RuleUnknownMember RuleKind = "unknown_member" // 会员号不在会员表中
	RuleDeclined      RuleKind = "declined"       // 明确弃置，或申请了别的场地
	RuleReserved      RuleKind = "reserved"       // 申请了本场地
	RuleScheduled     RuleKind = "scheduled"      // 无申请但已有吊装预约，视为隐式确认
	RuleNoRequest     RuleKind = "no_request"     // 会员存在但既无申请也无预约
)

// rule 单条判定规则。apply 返回 ok=false 表示规则不适用，交给下一条。
type rule struct {
	kind  RuleKind
	apply func(r *Resolver, spot string, id int) (model.Status, bool)
}

// rules 判定规则链。顺序即优先级：
// member_left > on_land > declined > reserved/scheduled > unknown。
var rules = []rule{
	{RuleNoBoat, func(r *Resolver, spot string, id int) (model.Status, bool) {
		return model.StatusUnknown, id <= 0
	}},
	{RuleMemberLeft, func(r *Resolver, spot string, id int) (model.Status, bool) {
		return model.StatusMemberLeft, r.records.IsExMember(id)
	}},
	{RuleOnLand, func(r *Resolver, spot string, id int) (model.Status, bool) {
		return model.StatusOnLand, r.records.IsOnLand(id)
	}},
	{RuleUnknownMember, func(r *Resolver, spot string, id int) (model.Status, bool) {
		if _, ok := r.records.Member(id); ok {
			return model.StatusUnknown, false
		}
		r.warnf("场地 %s: 会员 %d 不在会员表中", spot, id)
		return model.StatusUnknown, true
	}},
	{RuleDeclined, func(r *Resolver, spot string, id int) (model.Status, bool) {
		req, ok := r.records.RequestFor(id)
		if !ok {
			return model.StatusUnknown, false
		}
		if req.Declined {
			if r.records.IsScheduled(id) {
				// 同一会员既弃置又有吊装预约，来源互相矛盾。按弃置处理但必须出声。
				r.warnf("场地 %s: 会员 %d 既弃置场地又有吊装预约，按弃置处理", spot, id)
			}
			return model.StatusDeclined, true
		}
		// 申请的是别的场地：仅本场地判为 declined，申请的场地另行判定
		return model.StatusDeclined, !model.SameSpot(req.Spot, spot)
	}},
	{RuleReserved, func(r *Resolver, spot string, id int) (model.Status, bool) {
		req, ok := r.records.RequestFor(id)
		return model.StatusReserved, ok && model.SameSpot(req.Spot, spot)
	}},
	{RuleScheduled, func(r *Resolver, spot string, id int) (model.Status, bool) {
		return model.StatusReserved, r.records.IsScheduled(id)
	}},
	{RuleNoRequest, func(r *Resolver, spot string, id int) (model.Status, bool) {
		return model.StatusUnknown, true
	}},
}

func (r *Resolver) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
