package service

import (
	"time"

	"hrms/config"
	"hrms/internal/pkg/password"
	"hrms/internal/pkg/token"
	"hrms/internal/service/servicetest"
	"hrms/internal/telemetry"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// testEnv 組裝所有 service 與 fake store
type testEnv struct {
	conf      *config.Configuration
	clock     *servicetest.Clock
	employees *servicetest.EmployeeStore
	leaves    *servicetest.LeaveStore
	sequence  *servicetest.Sequence
	blacklist *servicetest.Blacklist
	hasher    *password.Hasher

	employee  *EmployeeService
	leave     *LeaveService
	dashboard *DashboardService
	auth      *AuthService
}

func newTestEnv() *testEnv {
	conf := &config.Configuration{}
	conf.App.Name = "hrms"
	conf.Security.JWTSecret = "test-secret"
	conf.Security.BcryptCost = bcrypt.MinCost

	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	clock := servicetest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	env := &testEnv{
		conf:      conf,
		clock:     clock,
		employees: servicetest.NewEmployeeStore(clock),
		leaves:    servicetest.NewLeaveStore(clock),
		sequence:  &servicetest.Sequence{},
		blacklist: &servicetest.Blacklist{},
		hasher:    password.NewHasher(conf),
	}
	env.employee = NewEmployeeService(trace, logger, env.employees, env.sequence, env.hasher, conf)
	env.leave = NewLeaveService(trace, metric, logger, env.leaves, env.employees)
	env.leave.now = func() time.Time { return time.Date(2024, 2, 5, 9, 30, 0, 0, time.UTC) }
	env.dashboard = NewDashboardService(trace, logger, env.employees, env.employee, env.leave)
	env.auth = NewAuthService(trace, logger, env.employee, token.NewManager(conf), env.blacklist)
	return env
}
