package service

import (
	"context"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/telemetry"

	"go.uber.org/zap"
)

const recentEmployeeLimit = 3

type DashboardService struct {
	trace     *telemetry.Trace
	logger    *zap.Logger
	employees EmployeeStore
	employee  *EmployeeService
	leave     *LeaveService
}

func NewDashboardService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	employees EmployeeStore,
	employee *EmployeeService,
	leave *LeaveService,
) *DashboardService {
	return &DashboardService{trace: trace, logger: logger, employees: employees, employee: employee, leave: leave}
}

// Summary 每次請求重新計算，不做快取
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	stats, err := s.stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.employee.RecentEmployees(ctx, recentEmployeeLimit)
	if err != nil {
		return nil, err
	}
	pending, err := s.leave.ListAllLeaves(ctx, core.LeaveStatusPending)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.EmployeeSummaryDto, len(recent))
	for i, employee := range recent {
		summaries[i] = toEmployeeSummary(employee)
	}
	return &dto.DashboardDto{
		Stats:                *stats,
		RecentEmployees:      summaries,
		PendingLeaveRequests: pending,
	}, nil
}

func (s *DashboardService) stats(ctx context.Context) (*dto.DashboardStatsDto, error) {
	nonHR := model.EmployeeFilter{ExcludeRole: core.RoleHR}
	total, err := s.employees.Count(ctx, nonHR)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, cErr.DatabaseError("database Dashboard error")
	}
	active, err := s.employees.Count(ctx, model.EmployeeFilter{ExcludeRole: core.RoleHR, Status: core.StatusActive})
	if err != nil {
		s.logger.Error("count active employees failed", zap.Error(err))
		return nil, cErr.DatabaseError("database Dashboard error")
	}
	departments, err := s.employees.DistinctDepartments(ctx)
	if err != nil {
		s.logger.Error("distinct departments failed", zap.Error(err))
		return nil, cErr.DatabaseError("database Dashboard error")
	}
	counts, err := s.leave.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDto{
		TotalEmployees:   total,
		ActiveEmployees:  active,
		TotalDepartments: int64(len(departments)),
		PendingLeaves:    counts[core.LeaveStatusPending],
		ApprovedLeaves:   counts[core.LeaveStatusApproved],
		RejectedLeaves:   counts[core.LeaveStatusRejected],
	}, nil
}

func toEmployeeSummary(employee *model.Employee) dto.EmployeeSummaryDto {
	return dto.EmployeeSummaryDto{
		ID:         employee.ID.Hex(),
		FullName:   employee.FullName,
		EmployeeID: employee.EmployeeID,
		Department: employee.Department,
		Position:   employee.Position,
		Status:     employee.Status,
		JoinDate:   employee.JoinDate,
	}
}
