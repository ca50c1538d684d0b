// Package servicetest 提供 service 層測試用的記憶體 store，行為對齊 MongoDB / Redis repository
package servicetest

import (
	"context"
	"sort"
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Clock 每次呼叫前進一秒，讓 createdAt 排序可預期
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

var DuplicateKeyError = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

type EmployeeStore struct {
	clock     *Clock
	Employees map[primitive.ObjectID]*model.Employee
	// CreateErr 非 nil 時 Create 直接回傳
	CreateErr error
}

func NewEmployeeStore(clock *Clock) *EmployeeStore {
	return &EmployeeStore{clock: clock, Employees: make(map[primitive.ObjectID]*model.Employee)}
}

func (r *EmployeeStore) Create(_ context.Context, e *model.Employee) (*model.Employee, error) {
	if r.CreateErr != nil {
		return nil, r.CreateErr
	}
	for _, existing := range r.Employees {
		if existing.Email == e.Email || existing.EmployeeID == e.EmployeeID {
			return nil, DuplicateKeyError
		}
	}
	clone := cloneEmployee(e)
	if clone.ID.IsZero() {
		clone.ID = primitive.NewObjectID()
	}
	now := r.clock.Now()
	clone.CreatedAt, clone.UpdatedAt = now, now
	r.Employees[clone.ID] = clone
	return cloneEmployee(clone), nil
}

func (r *EmployeeStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Employee, error) {
	employee, ok := r.Employees[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return cloneEmployee(employee), nil
}

func (r *EmployeeStore) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, employee := range r.Employees {
		if employee.Email == email {
			return cloneEmployee(employee), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *EmployeeStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Employee, error) {
	var result []*model.Employee
	for _, id := range ids {
		if employee, ok := r.Employees[id]; ok {
			result = append(result, cloneEmployee(employee))
		}
	}
	return result, nil
}

func (r *EmployeeStore) List(_ context.Context, filter model.EmployeeFilter) ([]*model.Employee, error) {
	result := make([]*model.Employee, 0)
	for _, employee := range r.sorted() {
		if filter.Match(employee) {
			result = append(result, cloneEmployee(employee))
		}
	}
	if filter.Limit > 0 && int64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *EmployeeStore) Count(_ context.Context, filter model.EmployeeFilter) (int64, error) {
	var count int64
	for _, employee := range r.Employees {
		if filter.Match(employee) {
			count++
		}
	}
	return count, nil
}

func (r *EmployeeStore) DistinctDepartments(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var departments []string
	for _, employee := range r.Employees {
		if employee.Department == "" {
			continue
		}
		if _, ok := seen[employee.Department]; !ok {
			seen[employee.Department] = struct{}{}
			departments = append(departments, employee.Department)
		}
	}
	return departments, nil
}

func (r *EmployeeStore) UpdateByID(_ context.Context, id primitive.ObjectID, update model.EmployeeUpdate) (*model.Employee, error) {
	employee, ok := r.Employees[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if update.Email != nil {
		for _, existing := range r.Employees {
			if existing.ID != id && existing.Email == *update.Email {
				return nil, DuplicateKeyError
			}
		}
	}
	update.Apply(employee)
	employee.UpdatedAt = r.clock.Now()
	return cloneEmployee(employee), nil
}

func (r *EmployeeStore) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	employee, ok := r.Employees[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	employee.PasswordHash = passwordHash
	return nil
}

func (r *EmployeeStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.Employees[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.Employees, id)
	return nil
}

// sorted createdAt 倒序
func (r *EmployeeStore) sorted() []*model.Employee {
	list := make([]*model.Employee, 0, len(r.Employees))
	for _, employee := range r.Employees {
		list = append(list, employee)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func cloneEmployee(employee *model.Employee) *model.Employee {
	if employee == nil {
		return nil
	}
	copy := *employee
	if employee.Salary != nil {
		salary := *employee.Salary
		copy.Salary = &salary
	}
	return &copy
}

type LeaveStore struct {
	clock  *Clock
	Leaves map[primitive.ObjectID]*model.LeaveRequest
}

func NewLeaveStore(clock *Clock) *LeaveStore {
	return &LeaveStore{clock: clock, Leaves: make(map[primitive.ObjectID]*model.LeaveRequest)}
}

func (r *LeaveStore) Create(_ context.Context, leave *model.LeaveRequest) (*model.LeaveRequest, error) {
	clone := cloneLeave(leave)
	if clone.ID.IsZero() {
		clone.ID = primitive.NewObjectID()
	}
	now := r.clock.Now()
	clone.CreatedAt, clone.UpdatedAt = now, now
	r.Leaves[clone.ID] = clone
	return cloneLeave(clone), nil
}

func (r *LeaveStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.LeaveRequest, error) {
	leave, ok := r.Leaves[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return cloneLeave(leave), nil
}

func (r *LeaveStore) List(_ context.Context, filter model.LeaveFilter) ([]*model.LeaveRequest, error) {
	result := make([]*model.LeaveRequest, 0)
	for _, leave := range r.Leaves {
		if filter.Match(leave) {
			result = append(result, cloneLeave(leave))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *LeaveStore) UpdateDecision(_ context.Context, id primitive.ObjectID, decision model.LeaveDecision) (*model.LeaveRequest, error) {
	leave, ok := r.Leaves[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	approvedDate := decision.ApprovedDate
	leave.Status = decision.Status
	leave.ApprovedBy = decision.ApprovedBy
	leave.ApprovedDate = &approvedDate
	leave.Comments = decision.Comments
	leave.UpdatedAt = r.clock.Now()
	return cloneLeave(leave), nil
}

func (r *LeaveStore) CountByStatus(_ context.Context) (map[core.LeaveStatus]int64, error) {
	counts := make(map[core.LeaveStatus]int64)
	for _, leave := range r.Leaves {
		counts[leave.Status]++
	}
	return counts, nil
}

func cloneLeave(leave *model.LeaveRequest) *model.LeaveRequest {
	if leave == nil {
		return nil
	}
	copy := *leave
	if leave.ApprovedDate != nil {
		approved := *leave.ApprovedDate
		copy.ApprovedDate = &approved
	}
	return &copy
}

type Sequence struct {
	values map[string]int64
}

func (s *Sequence) Next(_ context.Context, name string) (int64, error) {
	if s.values == nil {
		s.values = make(map[string]int64)
	}
	s.values[name]++
	return s.values[name], nil
}

type Blacklist struct {
	Revoked map[string]time.Duration
}

func (b *Blacklist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if b.Revoked == nil {
		b.Revoked = make(map[string]time.Duration)
	}
	b.Revoked[tokenID] = ttl
	return nil
}

func (b *Blacklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := b.Revoked[tokenID]
	return ok, nil
}
