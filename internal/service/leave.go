package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 員工已被刪除時顯示的名稱
const unknownEmployeeName = "Unknown"

type LeaveService struct {
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	logger    *zap.Logger
	leaves    LeaveStore
	employees EmployeeStore
	now       func() time.Time
}

func NewLeaveService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	leaves LeaveStore,
	employees EmployeeStore,
) *LeaveService {
	return &LeaveService{
		trace:     trace,
		metric:    metric,
		logger:    logger,
		leaves:    leaves,
		employees: employees,
		now:       time.Now,
	}
}

// ApplyLeave 以 email 找到員工後建立 pending 假單；不檢查日期重疊
func (s *LeaveService) ApplyLeave(ctx context.Context, req *dto.ApplyLeaveDto) (*dto.LeaveResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	leaveType, ok := core.ParseLeaveType(req.LeaveType)
	if !ok {
		return nil, cErr.InvalidInput("leaveType must be one of annual, sick, personal, emergency")
	}
	fromDate, ok := parseDate(req.FromDate)
	if !ok {
		return nil, cErr.InvalidInput("fromDate must be YYYY-MM-DD or RFC3339")
	}
	toDate, ok := parseDate(req.ToDate)
	if !ok {
		return nil, cErr.InvalidInput("toDate must be YYYY-MM-DD or RFC3339")
	}
	if fromDate.After(toDate) {
		return nil, cErr.InvalidInput("fromDate must not be after toDate")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, cErr.InvalidInput("reason is required")
	}

	employee, err := s.employees.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("User not found")
		}
		s.logger.Error("lookup employee by email failed", zap.Error(err))
		return nil, cErr.DatabaseError("database ApplyLeave error")
	}

	leave := &model.LeaveRequest{
		ID:        primitive.NewObjectID(),
		Employee:  employee.ID,
		LeaveType: leaveType,
		FromDate:  fromDate,
		ToDate:    toDate,
		Reason:    reason,
		Status:    core.LeaveStatusPending,
	}
	created, err := s.leaves.Create(ctx, leave)
	if err != nil {
		s.logger.Error("create leave request failed", zap.Error(err))
		return nil, cErr.DatabaseError("database ApplyLeave error")
	}

	days := inclusiveDays(created.FromDate, created.ToDate)
	s.trace.ApplyTraceAttributes(span, core.TraceLeaveApplyMeta{
		EmployeeID: employee.ID.Hex(),
		LeaveType:  string(leaveType),
		Days:       days,
	})
	return &dto.LeaveResponseDto{LeaveRequest: created, Days: days}, nil
}

// 單一員工的假單，最新在前；員工不存在時回傳空陣列
func (s *LeaveService) ListLeavesForEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]*dto.LeaveResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	leaves, err := s.leaves.List(ctx, model.LeaveFilter{Employee: employeeID})
	if err != nil {
		s.logger.Error("list leave requests failed", zap.String("employee", employeeID.Hex()), zap.Error(err))
		return nil, cErr.DatabaseError("database ListLeavesForEmployee error")
	}
	resp := make([]*dto.LeaveResponseDto, len(leaves))
	for i, leave := range leaves {
		resp[i] = &dto.LeaveResponseDto{LeaveRequest: leave, Days: inclusiveDays(leave.FromDate, leave.ToDate)}
	}
	return resp, nil
}

// 全部假單並附上員工名稱；status 為空時不篩選
func (s *LeaveService) ListAllLeaves(ctx context.Context, status core.LeaveStatus) ([]dto.LeaveListItemDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if status != "" && !status.Valid() {
		return nil, cErr.InvalidInput("status must be one of pending, approved, rejected")
	}
	leaves, err := s.leaves.List(ctx, model.LeaveFilter{Status: status})
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, cErr.DatabaseError("database ListAllLeaves error")
	}

	ids := make([]primitive.ObjectID, 0, len(leaves))
	seen := make(map[primitive.ObjectID]struct{}, len(leaves))
	for _, leave := range leaves {
		if _, ok := seen[leave.Employee]; ok {
			continue
		}
		seen[leave.Employee] = struct{}{}
		ids = append(ids, leave.Employee)
	}
	employees, err := s.employees.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("resolve leave employees failed", zap.Error(err))
		return nil, cErr.DatabaseError("database ListAllLeaves error")
	}
	byID := make(map[primitive.ObjectID]*model.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	items := make([]dto.LeaveListItemDto, len(leaves))
	for i, leave := range leaves {
		items[i] = toLeaveListItem(leave, byID[leave.Employee])
	}
	return items, nil
}

func toLeaveListItem(leave *model.LeaveRequest, employee *model.Employee) dto.LeaveListItemDto {
	item := dto.LeaveListItemDto{
		ID:           leave.ID.Hex(),
		EmployeeID:   leave.Employee.Hex(),
		EmployeeName: unknownEmployeeName,
		LeaveType:    leave.LeaveType,
		FromDate:     leave.FromDate,
		ToDate:       leave.ToDate,
		Days:         inclusiveDays(leave.FromDate, leave.ToDate),
		Reason:       leave.Reason,
		Status:       leave.Status,
		ApprovedBy:   leave.ApprovedBy,
		ApprovedDate: leave.ApprovedDate,
		Comments:     leave.Comments,
		AppliedAt:    leave.CreatedAt,
	}
	if employee != nil {
		if employee.FullName != "" {
			item.EmployeeName = employee.FullName
		}
		item.EmployeeEmail = employee.Email
		item.EmployeePosition = employee.Position
	}
	return item
}

// Decide 審核假單；已審核過的假單會被覆寫（僅記錄 Warn）
func (s *LeaveService) Decide(ctx context.Context, leaveID primitive.ObjectID, decision, reviewerID, comments string) (*dto.DecisionResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	status, ok := core.ParseDecision(decision)
	if !ok {
		return nil, cErr.InvalidDecision("Invalid decision value")
	}

	current, err := s.leaves.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("Leave request not found")
		}
		s.logger.Error("get leave request failed", zap.String("id", leaveID.Hex()), zap.Error(err))
		return nil, cErr.DatabaseError("database Decide error")
	}

	overridden := current.Status != core.LeaveStatusPending
	if overridden {
		s.logger.Warn("leave request decided again, previous decision overwritten",
			zap.String("id", leaveID.Hex()),
			zap.String("previous", string(current.Status)),
			zap.String("decision", string(status)),
			zap.String("reviewer", reviewerID),
		)
	}

	updated, err := s.leaves.UpdateDecision(ctx, leaveID, model.LeaveDecision{
		Status:       status,
		ApprovedBy:   strings.TrimSpace(reviewerID),
		ApprovedDate: s.now().UTC(),
		Comments:     comments,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("Leave request not found")
		}
		s.logger.Error("update leave decision failed", zap.String("id", leaveID.Hex()), zap.Error(err))
		return nil, cErr.DatabaseError("database Decide error")
	}

	s.metric.IncLeaveDecision(status)
	s.trace.ApplyTraceAttributes(span, core.TraceLeaveDecisionMeta{
		LeaveID:        leaveID.Hex(),
		Decision:       string(status),
		PreviousStatus: string(current.Status),
		ReviewerID:     reviewerID,
		Overridden:     overridden,
	})
	return &dto.DecisionResultDto{
		ID:             updated.ID.Hex(),
		Status:         updated.Status,
		PreviousStatus: current.Status,
		ApprovedBy:     updated.ApprovedBy,
		ApprovedDate:   updated.ApprovedDate,
		Comments:       updated.Comments,
	}, nil
}

// CountByStatus 每個狀態都會出現在結果中
func (s *LeaveService) CountByStatus(ctx context.Context) (map[core.LeaveStatus]int64, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	counts, err := s.leaves.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count leave requests failed", zap.Error(err))
		return nil, cErr.DatabaseError("database CountByStatus error")
	}
	result := make(map[core.LeaveStatus]int64, len(core.LeaveStatuses))
	for _, status := range core.LeaveStatuses {
		result[status] = counts[status]
	}
	return result, nil
}
