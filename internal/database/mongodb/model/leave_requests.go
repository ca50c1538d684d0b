package model

import (
	"time"

	"hrms/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeaveRequest 員工被刪除後不連動，employee 可能成為孤兒
type LeaveRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Employee     primitive.ObjectID `json:"employee" bson:"employee"`
	LeaveType    core.LeaveType     `json:"leaveType" bson:"leaveType"`
	FromDate     time.Time          `json:"fromDate" bson:"fromDate"`
	ToDate       time.Time          `json:"toDate" bson:"toDate"`
	Reason       string             `json:"reason" bson:"reason"`
	Status       core.LeaveStatus   `json:"status" bson:"status"`
	ApprovedBy   string             `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	ApprovedDate *time.Time         `json:"approvedDate,omitempty" bson:"approvedDate,omitempty"`
	Comments     string             `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LeaveStatusCount $group 聚合結果
type LeaveStatusCount struct {
	Status core.LeaveStatus `bson:"_id"`
	Count  int64            `bson:"count"`
}

var LeaveRequestIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employee", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_employee_createdAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_status"),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
}

// LeaveFilter 列表條件；零值代表全部
type LeaveFilter struct {
	Employee primitive.ObjectID
	Status   core.LeaveStatus
}

func (f LeaveFilter) ToBson() bson.M {
	filter := bson.M{}
	if !f.Employee.IsZero() {
		filter["employee"] = f.Employee
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (f LeaveFilter) Match(leave *LeaveRequest) bool {
	if !f.Employee.IsZero() && leave.Employee != f.Employee {
		return false
	}
	if f.Status != "" && leave.Status != f.Status {
		return false
	}
	return true
}

// LeaveDecision 審核結果
type LeaveDecision struct {
	Status       core.LeaveStatus `bson:"status"`
	ApprovedBy   string           `bson:"approvedBy"`
	ApprovedDate time.Time        `bson:"approvedDate"`
	Comments     string           `bson:"comments"`
}
