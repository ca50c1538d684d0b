package service

import (
	mongoRepo "hrms/internal/database/mongodb/repository"
	redisRepo "hrms/internal/database/redis/repository"
	"hrms/internal/pkg/password"
	"hrms/internal/pkg/token"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	password.NewHasher,
	token.NewManager,
	NewHealthService,
	NewEmployeeService,
	NewLeaveService,
	NewDashboardService,
	NewAuthService,
	wire.Bind(new(EmployeeStore), new(*mongoRepo.EmployeeRepository)),
	wire.Bind(new(LeaveStore), new(*mongoRepo.LeaveRequestRepository)),
	wire.Bind(new(SequenceGenerator), new(*mongoRepo.CounterRepository)),
	wire.Bind(new(TokenBlacklist), new(*redisRepo.TokenBlacklistRepository)),
)
