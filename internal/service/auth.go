package service

import (
	"context"
	"errors"

	"hrms/internal/core"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/token"
	"hrms/internal/telemetry"

	"go.uber.org/zap"
)

const tokenTypeBearer = "Bearer"

type AuthService struct {
	trace     *telemetry.Trace
	logger    *zap.Logger
	employee  *EmployeeService
	tokens    *token.Manager
	blacklist TokenBlacklist
}

func NewAuthService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	employee *EmployeeService,
	tokens *token.Manager,
	blacklist TokenBlacklist,
) *AuthService {
	return &AuthService{trace: trace, logger: logger, employee: employee, tokens: tokens, blacklist: blacklist}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employee.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, claims, err := s.tokens.Issue(employee.ID.Hex(), employee.Email, employee.Role)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return nil, cErr.InternalServer("unable to issue access token")
	}
	return &dto.LoginResponseDto{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   claims.ExpiresAt.Time,
		Employee:    employee,
	}, nil
}

// Logout 將 token jti 放入黑名單直到過期
func (s *AuthService) Logout(ctx context.Context, claims *core.Claims) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if claims == nil || claims.ID == "" {
		return cErr.InvalidSession("missing token id")
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, s.tokens.Remaining(claims)); err != nil {
		s.logger.Error("revoke token failed", zap.String("jti", claims.ID), zap.Error(err))
		return cErr.ServiceUnavailable("unable to revoke token")
	}
	return nil
}

// ParseToken 驗證簽章、效期與黑名單
func (s *AuthService) ParseToken(ctx context.Context, raw string) (*core.Claims, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			return nil, cErr.InvalidSession("invalid or expired token")
		}
		return nil, cErr.InvalidSession(err.Error())
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("check token blacklist failed", zap.String("jti", claims.ID), zap.Error(err))
		return nil, cErr.ServiceUnavailable("unable to verify token")
	}
	if revoked {
		return nil, cErr.InvalidSession("token has been revoked")
	}
	return claims, nil
}
