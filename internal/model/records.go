package model

import "strings"

// Member 会员记录（来自会员系统导出表，单次运行期间只读）
type Member struct {
	ID        int     // 会员号
	Length    float64 // 船长（米）
	Width     float64 // 船宽（米）
	FirstName string
	LastName  string
	Spot      string // 登记的场地编号
}

// DisplayName 地图标注用的展示名
func (m *Member) DisplayName() string {
	return m.LastName
}

// Request 场地申请（每个会员每次运行至多一条）
type Request struct {
	MemberID int
	Spot     string // 申请的场地编号，弃置时为空
	Declined bool   // 明确表示今年不要场地
	Comment  string
}

// OnLandMark 已上岸标记（仅当年记录有效）
type OnLandMark struct {
	MemberID int
	Year     int
}

// RecordSet 单次运行的全量规范化记录，构建完成后只读
type RecordSet struct {
	Year      int
	Members   map[int]*Member
	Requests  map[int]*Request
	ExMembers map[int]struct{}
	OnLand    map[int]struct{} // 已按当年过滤
	Scheduled map[int]struct{}
}

// NewRecordSet 创建空记录集
func NewRecordSet(year int) *RecordSet {
	return &RecordSet{
		Year:      year,
		Members:   make(map[int]*Member),
		Requests:  make(map[int]*Request),
		ExMembers: make(map[int]struct{}),
		OnLand:    make(map[int]struct{}),
		Scheduled: make(map[int]struct{}),
	}
}

// Member 按会员号查找会员
func (s *RecordSet) Member(id int) (*Member, bool) {
	m, ok := s.Members[id]
	return m, ok
}

// RequestFor 按会员号查找申请
func (s *RecordSet) RequestFor(id int) (*Request, bool) {
	r, ok := s.Requests[id]
	return r, ok
}

// IsExMember 会员是否已退会
func (s *RecordSet) IsExMember(id int) bool {
	_, ok := s.ExMembers[id]
	return ok
}

// IsOnLand 船是否已在当年上岸
func (s *RecordSet) IsOnLand(id int) bool {
	_, ok := s.OnLand[id]
	return ok
}

// IsScheduled 是否已有吊装预约
func (s *RecordSet) IsScheduled(id int) bool {
	_, ok := s.Scheduled[id]
	return ok
}

// SameSpot 场地编号比较：忽略大小写与首尾空白
func SameSpot(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
