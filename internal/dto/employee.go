package dto

import (
	"time"

	"hrms/internal/core"
	"hrms/internal/pkg/request"
)

// 新增員工；joinDate 接受 YYYY-MM-DD 或 RFC3339
type CreateEmployeeDto struct {
	FullName    string      `json:"fullName" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Role        core.Role   `json:"role,omitempty"`   // 未填為 employee
	Status      core.Status `json:"status,omitempty"` // 未填為 Active
	Department  string      `json:"department,omitempty"`
	Position    string      `json:"position,omitempty"`
	JoinDate    string      `json:"joinDate" binding:"required"`
	Phone       string      `json:"phone,omitempty"`
	Address     string      `json:"address,omitempty"`
	Salary      *float64    `json:"salary,omitempty" binding:"omitempty,gte=0"`
	ReportingTo string      `json:"reportingTo,omitempty"`
}

func (CreateEmployeeDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"FullName.required": "fullName is required",
		"Email.required":    "email is required",
		"Email.email":       "email format is invalid",
		"JoinDate.required": "joinDate is required",
		"Salary.gte":        "salary must not be negative",
	}
}

// 人資編輯員工；密碼不可由此修改
type UpdateEmployeeDto struct {
	FullName    *string      `json:"fullName,omitempty"`
	Email       *string      `json:"email,omitempty" binding:"omitempty,email"`
	Role        *core.Role   `json:"role,omitempty"`
	Status      *core.Status `json:"status,omitempty"`
	Department  *string      `json:"department,omitempty"`
	Position    *string      `json:"position,omitempty"`
	JoinDate    *string      `json:"joinDate,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Address     *string      `json:"address,omitempty"`
	Salary      *float64     `json:"salary,omitempty" binding:"omitempty,gte=0"`
	ReportingTo *string      `json:"reportingTo,omitempty"`
}

func (UpdateEmployeeDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.email": "email format is invalid",
		"Salary.gte":  "salary must not be negative",
	}
}

// 員工自行修改個人資料
type UpdateProfileDto struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func (d UpdateProfileDto) ToUpdateEmployee() UpdateEmployeeDto {
	return UpdateEmployeeDto{FullName: d.FullName, Phone: d.Phone, Address: d.Address}
}

type ChangePasswordDto struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (ChangePasswordDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"CurrentPassword.required": "currentPassword is required",
		"NewPassword.required":     "newPassword is required",
		"NewPassword.min":          "newPassword must be at least 6 characters",
	}
}

// 儀表板「最近加入」區塊
type EmployeeSummaryDto struct {
	ID         string      `json:"id"`
	FullName   string      `json:"fullName"`
	EmployeeID string      `json:"employeeId"`
	Department string      `json:"department,omitempty"`
	Position   string      `json:"position,omitempty"`
	Status     core.Status `json:"status"`
	JoinDate   time.Time   `json:"joinDate"`
}
