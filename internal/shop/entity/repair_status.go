package entity

import (
	"fmt"
	"strings"
)

// RepairStatus 维修工单状态
type RepairStatus string

const (
	StatusPending      RepairStatus = "Pending"
	StatusCompleted    RepairStatus = "Completed"
	StatusCannotRepair RepairStatus = "Cannot Repair"
	StatusPickedUp     RepairStatus = "Picked Up"
)

// statusRank 状态排序表：生命周期只允许向更高的 rank 单向推进。
// 表之外的任何状态值一律视为非法，不做静默兜底。
var statusRank = map[RepairStatus]int{
	StatusPending:      0,
	StatusCompleted:    1,
	StatusCannotRepair: 2,
	StatusPickedUp:     3,
}

// statusOrder 按 rank 升序排列的全部状态
var statusOrder = []RepairStatus{
	StatusPending,
	StatusCompleted,
	StatusCannotRepair,
	StatusPickedUp,
}

// ParseRepairStatus 校验并归一化状态字符串
func ParseRepairStatus(raw string) (RepairStatus, error) {
	s := RepairStatus(strings.TrimSpace(raw))
	if _, ok := statusRank[s]; !ok {
		return "", fmt.Errorf("unknown repair status: %q", raw)
	}
	return s, nil
}

// Known 状态是否在排序表内
func (s RepairStatus) Known() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank 返回状态的序号
func (s RepairStatus) Rank() (int, bool) {
	r, ok := statusRank[s]
	return r, ok
}

// IsTerminal 是否为终态（没有任何合法的后续状态）
func (s RepairStatus) IsTerminal() bool {
	r, ok := statusRank[s]
	return ok && r == len(statusOrder)-1
}

// AllStatuses 按 rank 升序返回全部状态
func AllStatuses() []RepairStatus {
	out := make([]RepairStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// ValidNextStatuses 返回 current 之后所有合法的目标状态（rank 升序）。
// current 未知时返回完整列表：仅用于新建工单时的初始状态选择。
func ValidNextStatuses(current RepairStatus) []RepairStatus {
	cur, ok := statusRank[current]
	if !ok {
		return AllStatuses()
	}
	var next []RepairStatus
	for _, s := range statusOrder {
		if statusRank[s] > cur {
			next = append(next, s)
		}
	}
	return next
}

// IsValidTransition 仅当两端状态均已知且 rank 严格递增时为真。
// 允许跨级（Pending 直接到 Picked Up），拒绝原地和回退。
func IsValidTransition(current, next RepairStatus) bool {
	cur, ok := statusRank[current]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// ExplainInvalidTransition 合法时返回空串，否则返回区分三种失败原因的诊断信息
func ExplainInvalidTransition(current, next RepairStatus) string {
	cur, okCur := statusRank[current]
	if !okCur {
		return fmt.Sprintf("current status %q is not recognized", string(current))
	}
	nxt, okNext := statusRank[next]
	if !okNext {
		return fmt.Sprintf("next status %q is not recognized", string(next))
	}
	if nxt <= cur {
		return fmt.Sprintf("backward or no-op transition from %q to %q is not allowed", string(current), string(next))
	}
	return ""
}
