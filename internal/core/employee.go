package core

import "strings"

type Role string

const (
	RoleEmployee Role = "employee" // 一般員工
	RoleHR       Role = "hr"       // 人資：可管理名冊與審核假單
	RoleAdmin    Role = "admin"
)

var Roles = []Role{RoleEmployee, RoleHR, RoleAdmin}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

// CanReview hr 與 admin 可進入 /hr 路由
func (r Role) CanReview() bool {
	return r == RoleHR || r == RoleAdmin
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var Statuses = []Status{StatusActive, StatusInactive}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

var LeaveStatuses = []LeaveStatus{LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected}

func (s LeaveStatus) Valid() bool {
	for _, v := range LeaveStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseDecision 大小寫不敏感；只接受 approved / rejected
func ParseDecision(decision string) (LeaveStatus, bool) {
	switch LeaveStatus(strings.ToLower(strings.TrimSpace(decision))) {
	case LeaveStatusApproved:
		return LeaveStatusApproved, true
	case LeaveStatusRejected:
		return LeaveStatusRejected, true
	default:
		return "", false
	}
}

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
)

var LeaveTypes = []LeaveType{LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeEmergency}

// ParseLeaveType 正規化為小寫後比對
func ParseLeaveType(leaveType string) (LeaveType, bool) {
	normalized := LeaveType(strings.ToLower(strings.TrimSpace(leaveType)))
	for _, v := range LeaveTypes {
		if normalized == v {
			return v, true
		}
	}
	return "", false
}
