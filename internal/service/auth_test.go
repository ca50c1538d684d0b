package service

import (
	"context"
	"testing"

	"hrms/internal/core"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginParseLogout(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	employee := mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Jane", Email: "hr@x.com", JoinDate: "2024-01-01", Role: core.RoleHR})

	login, err := env.auth.Login(ctx, &dto.LoginDto{Email: "hr@x.com", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, employee.ID, login.Employee.ID)

	claims, err := env.auth.ParseToken(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, employee.ID.Hex(), claims.EmployeeID)
	assert.Equal(t, core.RoleHR, claims.Role)
	assert.Equal(t, "hr@x.com", claims.Email)

	require.NoError(t, env.auth.Logout(ctx, claims))
	assert.Contains(t, env.blacklist.Revoked, claims.ID)
	assert.Positive(t, env.blacklist.Revoked[claims.ID])

	_, err = env.auth.ParseToken(ctx, login.AccessToken)
	assert.True(t, cErr.HasCode(err, cErr.INVALID_SESSION))
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	mustAddEmployee(t, env, dto.CreateEmployeeDto{FullName: "Alice", Email: "a@x.com", JoinDate: "2024-01-01"})

	_, err := env.auth.Login(context.Background(), &dto.LoginDto{Email: "a@x.com", Password: "wrong"})

	assert.True(t, cErr.HasCode(err, cErr.INVALID_CREDENTIALS))
}

func TestAuthService_ParseTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv()

	_, err := env.auth.ParseToken(context.Background(), "not-a-jwt")

	assert.True(t, cErr.HasCode(err, cErr.INVALID_SESSION))
}

func TestAuthService_LogoutWithoutTokenID(t *testing.T) {
	env := newTestEnv()

	err := env.auth.Logout(context.Background(), &core.Claims{})

	assert.True(t, cErr.HasCode(err, cErr.INVALID_SESSION))
}
