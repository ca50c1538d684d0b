package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/password"
	"hrms/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type EmployeeService struct {
	trace           *telemetry.Trace
	logger          *zap.Logger
	employees       EmployeeStore
	sequences       SequenceGenerator
	hasher          *password.Hasher
	initialPassword string
}

func NewEmployeeService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	employees EmployeeStore,
	sequences SequenceGenerator,
	hasher *password.Hasher,
	conf *config.Configuration,
) *EmployeeService {
	return &EmployeeService{
		trace:           trace,
		logger:          logger,
		employees:       employees,
		sequences:       sequences,
		hasher:          hasher,
		initialPassword: conf.Security.InitialPassword(),
	}
}

// 列出員工，excludeRole 為空時不排除任何角色
func (s *EmployeeService) ListEmployees(ctx context.Context, excludeRole core.Role) ([]*model.Employee, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if excludeRole != "" && !excludeRole.Valid() {
		return nil, cErr.InvalidInput(fmt.Sprintf("unknown role %q", excludeRole))
	}
	employees, err := s.employees.List(ctx, model.EmployeeFilter{ExcludeRole: excludeRole})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, cErr.DatabaseError("database ListEmployees error")
	}
	s.trace.ApplyTraceAttributes(span, core.TraceEmployeeListMeta{ExcludeRole: string(excludeRole), ResultCount: len(employees)})
	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("employee not found")
		}
		s.logger.Error("get employee failed", zap.String("id", id.Hex()), zap.Error(err))
		return nil, cErr.DatabaseError("database GetEmployee error")
	}
	return employee, nil
}

// 最近加入的非 HR 員工（儀表板）
func (s *EmployeeService) RecentEmployees(ctx context.Context, limit int64) ([]*model.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.employees.List(ctx, model.EmployeeFilter{ExcludeRole: core.RoleHR, Limit: limit})
	if err != nil {
		s.logger.Error("list recent employees failed", zap.Error(err))
		return nil, cErr.DatabaseError("database RecentEmployees error")
	}
	return employees, nil
}

// 新增員工；email 重複時 store 不做任何變更
func (s *EmployeeService) AddEmployee(ctx context.Context, req *dto.CreateEmployeeDto) (*model.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	email := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" {
		return nil, cErr.InvalidInput("fullName and email are required")
	}
	joinDate, ok := parseDate(req.JoinDate)
	if !ok {
		return nil, cErr.InvalidInput("joinDate must be YYYY-MM-DD or RFC3339")
	}
	role := req.Role
	if role == "" {
		role = core.RoleEmployee
	}
	if !role.Valid() {
		return nil, cErr.InvalidInput(fmt.Sprintf("unknown role %q", req.Role))
	}
	status := req.Status
	if status == "" {
		status = core.StatusActive
	}
	if !status.Valid() {
		return nil, cErr.InvalidInput(fmt.Sprintf("unknown status %q", req.Status))
	}

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil, cErr.DuplicateEmail("Email already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("lookup employee by email failed", zap.Error(err))
		return nil, cErr.DatabaseError("database AddEmployee error")
	}

	seq, err := s.sequences.Next(ctx, core.CounterEmployeeID)
	if err != nil {
		s.logger.Error("allocate employeeId failed", zap.Error(err))
		return nil, cErr.DatabaseError("database AddEmployee error")
	}
	passwordHash, err := s.hasher.Hash(s.initialPassword)
	if err != nil {
		s.logger.Error("hash initial password failed", zap.Error(err))
		return nil, cErr.InternalServer("unable to set initial password")
	}

	employee := &model.Employee{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        email,
		EmployeeID:   formatEmployeeID(seq),
		Phone:        req.Phone,
		Address:      req.Address,
		Department:   strings.TrimSpace(req.Department),
		Position:     req.Position,
		Role:         role,
		Status:       status,
		JoinDate:     joinDate,
		Salary:       req.Salary,
		ReportingTo:  req.ReportingTo,
		PasswordHash: passwordHash,
	}
	created, err := s.employees.Create(ctx, employee)
	if err != nil {
		// 並發新增同一 email 時由唯一索引擋下
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.DuplicateEmail("Email already exists")
		}
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, cErr.DatabaseError("database AddEmployee error")
	}
	s.logger.Info("employee created", zap.String("employeeId", created.EmployeeID), zap.String("role", string(created.Role)))
	return created, nil
}

// 只合併非 nil 欄位
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id primitive.ObjectID, req *dto.UpdateEmployeeDto) (*model.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update, appErr := buildEmployeeUpdate(req)
	if appErr != nil {
		return nil, appErr
	}

	if update.Email != nil {
		existing, err := s.employees.GetByEmail(ctx, *update.Email)
		switch {
		case err == nil && existing.ID != id:
			return nil, cErr.DuplicateEmail("Email already exists")
		case err != nil && !errors.Is(err, mongo.ErrNoDocuments):
			s.logger.Error("lookup employee by email failed", zap.Error(err))
			return nil, cErr.DatabaseError("database UpdateEmployee error")
		}
	}

	updated, err := s.employees.UpdateByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound(fmt.Sprintf("employee with id %s not found", id.Hex()))
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.DuplicateEmail("Email already exists")
		}
		s.logger.Error("update employee failed", zap.String("id", id.Hex()), zap.Error(err))
		return nil, cErr.DatabaseError("database UpdateEmployee error")
	}
	return updated, nil
}

func buildEmployeeUpdate(req *dto.UpdateEmployeeDto) (model.EmployeeUpdate, *cErr.Error) {
	update := model.EmployeeUpdate{
		Phone:       req.Phone,
		Address:     req.Address,
		Position:    req.Position,
		Salary:      req.Salary,
		ReportingTo: req.ReportingTo,
	}
	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		if fullName == "" {
			return update, cErr.InvalidInput("fullName must not be empty")
		}
		update.FullName = &fullName
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			return update, cErr.InvalidInput("email must not be empty")
		}
		update.Email = &email
	}
	if req.Department != nil {
		department := strings.TrimSpace(*req.Department)
		update.Department = &department
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return update, cErr.InvalidInput(fmt.Sprintf("unknown role %q", *req.Role))
		}
		update.Role = req.Role
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return update, cErr.InvalidInput(fmt.Sprintf("unknown status %q", *req.Status))
		}
		update.Status = req.Status
	}
	if req.JoinDate != nil {
		joinDate, ok := parseDate(*req.JoinDate)
		if !ok {
			return update, cErr.InvalidInput("joinDate must be YYYY-MM-DD or RFC3339")
		}
		update.JoinDate = &joinDate
	}
	return update, nil
}

// 刪除員工；不連動刪除其請假單
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.employees.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("employee with id %s not found", id.Hex()))
		}
		s.logger.Error("delete employee failed", zap.String("id", id.Hex()), zap.Error(err))
		return cErr.DatabaseError("database DeleteEmployee error")
	}
	s.logger.Info("employee deleted", zap.String("id", id.Hex()))
	return nil
}

// Authenticate 任何比對失敗都回傳相同的 InvalidCredentials
func (s *EmployeeService) Authenticate(ctx context.Context, email, plain string) (*model.Employee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.hasher.CompareDummy(plain)
			return nil, cErr.InvalidCredentials("Invalid email or password")
		}
		s.logger.Error("lookup employee by email failed", zap.Error(err))
		return nil, cErr.DatabaseError("database Authenticate error")
	}
	if err := s.hasher.Compare(employee.PasswordHash, plain); err != nil {
		return nil, cErr.InvalidCredentials("Invalid email or password")
	}
	if employee.Status != core.StatusActive {
		return nil, cErr.InvalidCredentials("Invalid email or password")
	}
	return employee, nil
}

func (s *EmployeeService) ChangePassword(ctx context.Context, id primitive.ObjectID, current, next string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if len(next) < minPasswordLength {
		return cErr.InvalidInput(fmt.Sprintf("newPassword must be at least %d characters", minPasswordLength))
	}
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("User not found")
		}
		s.logger.Error("get employee failed", zap.String("id", id.Hex()), zap.Error(err))
		return cErr.DatabaseError("database ChangePassword error")
	}
	if err := s.hasher.Compare(employee.PasswordHash, current); err != nil {
		return cErr.WrongPassword("Current password is incorrect")
	}

	passwordHash, err := s.hasher.Hash(next)
	if err != nil {
		s.logger.Error("hash new password failed", zap.Error(err))
		return cErr.InternalServer("unable to update password")
	}
	if err := s.employees.UpdatePassword(ctx, id, passwordHash); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("User not found")
		}
		s.logger.Error("update password failed", zap.String("id", id.Hex()), zap.Error(err))
		return cErr.DatabaseError("database ChangePassword error")
	}
	return nil
}

func formatEmployeeID(seq int64) string {
	return fmt.Sprintf("EMP%06d", seq)
}
