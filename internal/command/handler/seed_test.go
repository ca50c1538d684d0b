package command

import (
	"context"
	"testing"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/pkg/password"
	"hrms/internal/service/servicetest"
	"hrms/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedHandler_Idempotent(t *testing.T) {
	conf := &config.Configuration{}
	conf.Security.BcryptCost = bcrypt.MinCost
	store := servicetest.NewEmployeeStore(servicetest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	hasher := password.NewHasher(conf)
	handler := &SeedHandler{logger: zap.NewNop(), trace: &telemetry.Trace{}, employees: store, hasher: hasher}

	created, err := handler.seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = handler.seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
	require.Len(t, store.Employees, 2)

	hr, err := store.GetByEmail(context.Background(), "jane.smith@company.com")
	require.NoError(t, err)
	assert.Equal(t, "HR001", hr.EmployeeID)
	assert.Equal(t, core.RoleHR, hr.Role)
	assert.NoError(t, hasher.Compare(hr.PasswordHash, seedPassword))

	employee, err := store.GetByEmail(context.Background(), "john.doe@company.com")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", employee.EmployeeID)
	assert.Equal(t, core.RoleEmployee, employee.Role)
}
