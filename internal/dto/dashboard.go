package dto

type DashboardStatsDto struct {
	TotalEmployees   int64 `json:"totalEmployees"`
	ActiveEmployees  int64 `json:"activeEmployees"`
	TotalDepartments int64 `json:"totalDepartments"`
	PendingLeaves    int64 `json:"pendingLeaves"`
	ApprovedLeaves   int64 `json:"approvedLeaves"`
	RejectedLeaves   int64 `json:"rejectedLeaves"`
}

type DashboardDto struct {
	Stats                DashboardStatsDto    `json:"stats"`
	RecentEmployees      []EmployeeSummaryDto `json:"recentEmployees"`
	PendingLeaveRequests []LeaveListItemDto   `json:"pendingLeaveRequests"`
}
