package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	mongoRepo "hrms/internal/database/mongodb/repository"
	"hrms/internal/pkg/password"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const seedPassword = "password123"

// 示範帳號：一位人資、一位一般員工
var seedEmployees = []model.Employee{
	{
		FullName:   "Jane Smith",
		Email:      "jane.smith@company.com",
		Phone:      "+1234567891",
		EmployeeID: "HR001",
		Address:    "456 Oak Ave, City, State",
		Department: "Human Resources",
		Position:   "HR Manager",
		Role:       core.RoleHR,
		Status:     core.StatusActive,
		JoinDate:   time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		FullName:   "John Doe",
		Email:      "john.doe@company.com",
		Phone:      "+1234567890",
		EmployeeID: "EMP001",
		Address:    "123 Main St, City, State",
		Department: "Engineering",
		Position:   "Software Engineer",
		Role:       core.RoleEmployee,
		Status:     core.StatusActive,
		JoinDate:   time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
	},
}

type SeedHandler struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	employees service.EmployeeStore
	hasher    *password.Hasher
}

func NewSeedHandler(
	logger *zap.Logger,
	trace *telemetry.Trace,
	employees *mongoRepo.EmployeeRepository,
	hasher *password.Hasher,
) *SeedHandler {
	return &SeedHandler{logger: logger, trace: trace, employees: employees, hasher: hasher}
}

// Seed 已存在的 email 直接略過，可重複執行
func (handler *SeedHandler) Seed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	created, err := handler.seed(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("seed finished: %d created, %d skipped\n", created, len(seedEmployees)-created)
	return nil
}

func (handler *SeedHandler) seed(ctx context.Context) (int, error) {
	ctx, span, end := handler.trace.WithSpan(ctx, string(core.SpanSeedCommand))
	var returnedError error
	defer func() { end(returnedError) }()

	hash, err := handler.hasher.Hash(seedPassword)
	if err != nil {
		returnedError = err
		return 0, fmt.Errorf("hash seed password: %w", err)
	}

	created := 0
	for i := range seedEmployees {
		employee := seedEmployees[i]
		meta := core.TraceSeedMeta{Email: employee.Email}

		_, err := handler.employees.GetByEmail(ctx, employee.Email)
		switch {
		case err == nil:
			handler.logger.Info("seed employee exists, skipped", zap.String("email", employee.Email))
			handler.trace.ApplyTraceAttributes(span, meta)
			continue
		case !errors.Is(err, mongo.ErrNoDocuments):
			returnedError = err
			return created, fmt.Errorf("lookup %s: %w", employee.Email, err)
		}

		employee.PasswordHash = hash
		if _, err := handler.employees.Create(ctx, &employee); err != nil {
			returnedError = err
			return created, fmt.Errorf("create %s: %w", employee.Email, err)
		}
		created++
		meta.Created = true
		handler.trace.ApplyTraceAttributes(span, meta)
		handler.logger.Info("seed employee created",
			zap.String("email", employee.Email),
			zap.String("employeeId", employee.EmployeeID),
		)
	}
	return created, nil
}
