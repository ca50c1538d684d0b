package service

import (
	"context"
	"testing"
	"time"

	"hrms/internal/core"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sickLeave(email string) *dto.ApplyLeaveDto {
	return &dto.ApplyLeaveDto{Email: email, LeaveType: "sick", FromDate: "2024-02-01", ToDate: "2024-02-03", Reason: "flu"}
}

func TestApplyLeave_CreatesPendingRequest(t *testing.T) {
	env := newTestEnv()
	employee := mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})

	leave, err := env.leave.ApplyLeave(context.Background(), sickLeave("A@x.com"))

	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusPending, leave.Status)
	assert.Equal(t, employee.ID, leave.Employee)
	assert.Equal(t, core.LeaveTypeSick, leave.LeaveType)
	assert.Equal(t, 3, leave.Days)
	assert.Nil(t, leave.ApprovedDate)

	owner, err := env.employee.GetEmployee(context.Background(), leave.Employee)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", owner.Email)
}

func TestApplyLeave_Validation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.ApplyLeaveDto)
		code   int
	}{
		"unknown employee":  {func(r *dto.ApplyLeaveDto) { r.Email = "nobody@x.com" }, cErr.NOT_FOUND},
		"unknown type":      {func(r *dto.ApplyLeaveDto) { r.LeaveType = "vacation" }, cErr.BAD_REQUEST_BODY},
		"from after to":     {func(r *dto.ApplyLeaveDto) { r.FromDate, r.ToDate = "2024-02-05", "2024-02-01" }, cErr.BAD_REQUEST_BODY},
		"malformed date":    {func(r *dto.ApplyLeaveDto) { r.ToDate = "Feb 3" }, cErr.BAD_REQUEST_BODY},
		"whitespace reason": {func(r *dto.ApplyLeaveDto) { r.Reason = "   " }, cErr.BAD_REQUEST_BODY},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv()
			mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
			req := sickLeave("a@x.com")
			tc.mutate(req)

			_, err := env.leave.ApplyLeave(context.Background(), req)

			assert.True(t, cErr.HasCode(err, tc.code), "got %v", err)
			assert.Empty(t, env.leaves.Leaves)
		})
	}
}

func TestApplyLeave_NormalizesLeaveTypeAndAcceptsRFC3339(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})

	leave, err := env.leave.ApplyLeave(context.Background(), &dto.ApplyLeaveDto{
		Email: "a@x.com", LeaveType: "Annual", FromDate: "2024-03-01T00:00:00Z", ToDate: "2024-03-01", Reason: "trip",
	})

	require.NoError(t, err)
	assert.Equal(t, core.LeaveTypeAnnual, leave.LeaveType)
	assert.Equal(t, 1, leave.Days)
}

func TestApplyLeave_RFC3339KeepsCalendarDateOfOffset(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})

	leave, err := env.leave.ApplyLeave(context.Background(), &dto.ApplyLeaveDto{
		Email: "a@x.com", LeaveType: "sick", FromDate: "2024-02-01T23:00:00-05:00", ToDate: "2024-02-01", Reason: "flu",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), leave.FromDate)
	assert.Equal(t, 1, leave.Days)
}

func TestDecide_SecondDecisionOverwritesFirst(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
	leave, err := env.leave.ApplyLeave(context.Background(), sickLeave("a@x.com"))
	require.NoError(t, err)

	first, err := env.leave.Decide(context.Background(), leave.ID, "approved", "hr1", "")
	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusApproved, first.Status)
	assert.Equal(t, core.LeaveStatusPending, first.PreviousStatus)

	// 目前行為：已審核的假單仍可再次審核
	second, err := env.leave.Decide(context.Background(), leave.ID, "rejected", "hr2", "changed mind")
	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusRejected, second.Status)
	assert.Equal(t, core.LeaveStatusApproved, second.PreviousStatus)

	stored := env.leaves.Leaves[leave.ID]
	assert.Equal(t, core.LeaveStatusRejected, stored.Status)
	assert.Equal(t, "hr2", stored.ApprovedBy)
	assert.Equal(t, "changed mind", stored.Comments)
}

func TestDecide_InvalidDecisionLeavesStatusUnchanged(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
	leave, err := env.leave.ApplyLeave(context.Background(), sickLeave("a@x.com"))
	require.NoError(t, err)

	_, err = env.leave.Decide(context.Background(), leave.ID, "maybe", "hr1", "")

	assert.True(t, cErr.HasCode(err, cErr.INVALID_DECISION))
	stored := env.leaves.Leaves[leave.ID]
	assert.Equal(t, core.LeaveStatusPending, stored.Status)
	assert.Empty(t, stored.ApprovedBy)
	assert.Nil(t, stored.ApprovedDate)
}

func TestDecide_CaseInsensitiveAndNotFound(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
	leave, err := env.leave.ApplyLeave(context.Background(), sickLeave("a@x.com"))
	require.NoError(t, err)

	result, err := env.leave.Decide(context.Background(), leave.ID, " REJECTED ", "", "")
	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusRejected, result.Status)

	_, err = env.leave.Decide(context.Background(), primitive.NewObjectID(), "approved", "hr1", "")
	assert.True(t, cErr.HasCode(err, cErr.NOT_FOUND))
}

func TestDeleteEmployee_LeavesOrphanedRequests(t *testing.T) {
	env := newTestEnv()
	employee := mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
	leave, err := env.leave.ApplyLeave(context.Background(), sickLeave("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, env.employee.DeleteEmployee(context.Background(), employee.ID))

	require.Contains(t, env.leaves.Leaves, leave.ID)
	assert.Equal(t, employee.ID, env.leaves.Leaves[leave.ID].Employee)
	_, err = env.employee.GetEmployee(context.Background(), employee.ID)
	assert.True(t, cErr.HasCode(err, cErr.NOT_FOUND))

	items, err := env.leave.ListAllLeaves(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Unknown", items[0].EmployeeName)
	assert.Equal(t, employee.ID.Hex(), items[0].EmployeeID)

	own, err := env.leave.ListLeavesForEmployee(context.Background(), employee.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestListLeaves_OrderAndFilter(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01", Position: "Engineer"})
	bob := mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Bob", Email: "b@x.com", JoinDate: "2024-01-01"})
	ctx := context.Background()

	first, err := env.leave.ApplyLeave(ctx, sickLeave("a@x.com"))
	require.NoError(t, err)
	second, err := env.leave.ApplyLeave(ctx, sickLeave("b@x.com"))
	require.NoError(t, err)
	third, err := env.leave.ApplyLeave(ctx, sickLeave("a@x.com"))
	require.NoError(t, err)
	_, err = env.leave.Decide(ctx, second.ID, "approved", "hr1", "")
	require.NoError(t, err)

	all, err := env.leave.ListAllLeaves(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID.Hex(), all[0].ID)
	assert.Equal(t, first.ID.Hex(), all[2].ID)
	assert.Equal(t, "Alice", all[0].EmployeeName)
	assert.Equal(t, "a@x.com", all[0].EmployeeEmail)
	assert.Equal(t, "Engineer", all[0].EmployeePosition)

	pending, err := env.leave.ListAllLeaves(ctx, core.LeaveStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = env.leave.ListAllLeaves(ctx, "cancelled")
	assert.True(t, cErr.HasCode(err, cErr.BAD_REQUEST_BODY))

	bobs, err := env.leave.ListLeavesForEmployee(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, core.LeaveStatusApproved, bobs[0].Status)
}

func TestLeaveLifecycleScenario(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	employee, err := env.employee.AddEmployee(ctx, &dto.CreateEmployeeDto{FullName: "A", Email: "a@x.com", JoinDate: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, core.StatusActive, employee.Status)
	assert.Equal(t, core.RoleEmployee, employee.Role)

	leave, err := env.leave.ApplyLeave(ctx, sickLeave("a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusPending, leave.Status)

	result, err := env.leave.Decide(ctx, leave.ID, "approved", "hr1", "")
	require.NoError(t, err)
	assert.Equal(t, core.LeaveStatusApproved, result.Status)
	assert.Equal(t, "hr1", result.ApprovedBy)
	require.NotNil(t, result.ApprovedDate)
	assert.Equal(t, time.Date(2024, 2, 5, 9, 30, 0, 0, time.UTC), *result.ApprovedDate)
}

func TestCountByStatus_IncludesEveryStatus(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})
	_, err := env.leave.ApplyLeave(context.Background(), sickLeave("a@x.com"))
	require.NoError(t, err)

	counts, err := env.leave.CountByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[core.LeaveStatus]int64{
		core.LeaveStatusPending:  1,
		core.LeaveStatusApproved: 0,
		core.LeaveStatusRejected: 0,
	}, counts)
}
