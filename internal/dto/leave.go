package dto

import (
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/pkg/request"
)

// 送出請假；以 email 指定員工
type ApplyLeaveDto struct {
	Email     string `json:"email" binding:"required,email"`
	LeaveType string `json:"leaveType" binding:"required"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

func (ApplyLeaveDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.required":     "email is required",
		"Email.email":        "email format is invalid",
		"LeaveType.required": "leaveType is required",
		"FromDate.required":  "fromDate is required",
		"ToDate.required":    "toDate is required",
		"Reason.required":    "reason is required",
	}
}

type LeaveResponseDto struct {
	*model.LeaveRequest
	Days int `json:"days"`
}

// 人資列表用，附帶員工資訊；員工已刪除時 EmployeeName 為 Unknown
type LeaveListItemDto struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee"`
	EmployeeName     string           `json:"employeeName"`
	EmployeeEmail    string           `json:"employeeEmail,omitempty"`
	EmployeePosition string           `json:"employeePosition,omitempty"`
	LeaveType        core.LeaveType   `json:"leaveType"`
	FromDate         time.Time        `json:"fromDate"`
	ToDate           time.Time        `json:"toDate"`
	Days             int              `json:"days"`
	Reason           string           `json:"reason"`
	Status           core.LeaveStatus `json:"status"`
	ApprovedBy       string           `json:"approvedBy,omitempty"`
	ApprovedDate     *time.Time       `json:"approvedDate,omitempty"`
	Comments         string           `json:"comments,omitempty"`
	AppliedAt        time.Time        `json:"appliedAt"`
}

type DecideLeaveDto struct {
	Decision   string `json:"decision" binding:"required"`
	ReviewerID string `json:"reviewerId,omitempty"` // 未填時為呼叫者
	Comments   string `json:"comments,omitempty"`
}

func (DecideLeaveDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Decision.required": "decision is required",
	}
}

type DecisionResultDto struct {
	ID             string           `json:"id"`
	Status         core.LeaveStatus `json:"status"`
	PreviousStatus core.LeaveStatus `json:"previousStatus"`
	ApprovedBy     string           `json:"approvedBy"`
	ApprovedDate   *time.Time       `json:"approvedDate"`
	Comments       string           `json:"comments,omitempty"`
}
