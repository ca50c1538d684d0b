package model

import (
	"time"

	"hrms/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee email 小寫儲存且唯一；employeeId 為 counters 序號產生的 EMP000001；
// reportingTo 為自由文字，非外鍵
type Employee struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	FullName     string             `json:"fullName" bson:"fullName"`
	Email        string             `json:"email" bson:"email"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Department   string             `json:"department,omitempty" bson:"department,omitempty"`
	Position     string             `json:"position,omitempty" bson:"position,omitempty"`
	Role         core.Role          `json:"role" bson:"role"`
	Status       core.Status        `json:"status" bson:"status"`
	JoinDate     time.Time          `json:"joinDate" bson:"joinDate"`
	Salary       *float64           `json:"salary,omitempty" bson:"salary,omitempty"`
	ReportingTo  string             `json:"reportingTo,omitempty" bson:"reportingTo,omitempty"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetName("idx_role"),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
}

// EmployeeUpdate 部分更新；nil 欄位不會寫入 $set
type EmployeeUpdate struct {
	FullName    *string      `bson:"fullName,omitempty"`
	Email       *string      `bson:"email,omitempty"`
	Phone       *string      `bson:"phone,omitempty"`
	Address     *string      `bson:"address,omitempty"`
	Department  *string      `bson:"department,omitempty"`
	Position    *string      `bson:"position,omitempty"`
	Role        *core.Role   `bson:"role,omitempty"`
	Status      *core.Status `bson:"status,omitempty"`
	JoinDate    *time.Time   `bson:"joinDate,omitempty"`
	Salary      *float64     `bson:"salary,omitempty"`
	ReportingTo *string      `bson:"reportingTo,omitempty"`
}

func (u EmployeeUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Email == nil && u.Phone == nil && u.Address == nil &&
		u.Department == nil && u.Position == nil && u.Role == nil && u.Status == nil &&
		u.JoinDate == nil && u.Salary == nil && u.ReportingTo == nil
}

// Apply 將非 nil 欄位套用到 employee（供記憶體內比對與測試使用）
func (u EmployeeUpdate) Apply(employee *Employee) {
	if u.FullName != nil {
		employee.FullName = *u.FullName
	}
	if u.Email != nil {
		employee.Email = *u.Email
	}
	if u.Phone != nil {
		employee.Phone = *u.Phone
	}
	if u.Address != nil {
		employee.Address = *u.Address
	}
	if u.Department != nil {
		employee.Department = *u.Department
	}
	if u.Position != nil {
		employee.Position = *u.Position
	}
	if u.Role != nil {
		employee.Role = *u.Role
	}
	if u.Status != nil {
		employee.Status = *u.Status
	}
	if u.JoinDate != nil {
		employee.JoinDate = *u.JoinDate
	}
	if u.Salary != nil {
		salary := *u.Salary
		employee.Salary = &salary
	}
	if u.ReportingTo != nil {
		employee.ReportingTo = *u.ReportingTo
	}
}

// EmployeeFilter 列表條件；零值代表不限制
type EmployeeFilter struct {
	ExcludeRole core.Role
	Status      core.Status
	Limit       int64
}

func (f EmployeeFilter) ToBson() bson.M {
	filter := bson.M{}
	if f.ExcludeRole != "" {
		filter["role"] = bson.M{"$ne": f.ExcludeRole}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// Match 與 ToBson 同義的記憶體內判斷
func (f EmployeeFilter) Match(employee *Employee) bool {
	if f.ExcludeRole != "" && employee.Role == f.ExcludeRole {
		return false
	}
	if f.Status != "" && employee.Status != f.Status {
		return false
	}
	return true
}
