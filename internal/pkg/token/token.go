package token

import (
	"errors"
	"fmt"
	"time"

	"hrms/config"
	"hrms/internal/core"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token: invalid or expired")

// Manager 簽發與驗證 HS256 access token
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(conf *config.Configuration) *Manager {
	return &Manager{
		secret: []byte(conf.Security.JWTSecret),
		issuer: conf.App.Name,
		ttl:    conf.Security.TokenTTL(),
		now:    time.Now,
	}
}

func (m *Manager) Issue(employeeID, email string, role core.Role) (string, *core.Claims, error) {
	if len(m.secret) == 0 {
		return "", nil, errors.New("token: empty signing secret")
	}
	now := m.now().UTC()
	claims := &core.Claims{
		EmployeeID: employeeID,
		Email:      email,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   employeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("token: sign: %w", err)
	}
	return signed, claims, nil
}

func (m *Manager) Parse(raw string) (*core.Claims, error) {
	claims := &core.Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if m.issuer != "" && !claims.VerifyIssuer(m.issuer, true) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Remaining token 剩餘有效時間，供黑名單設定 TTL
func (m *Manager) Remaining(claims *core.Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return m.ttl
	}
	left := claims.ExpiresAt.Time.Sub(m.now())
	if left < 0 {
		return 0
	}
	return left
}
