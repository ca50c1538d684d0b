package core

import "github.com/golang-jwt/jwt/v4"

// ContextClaimsKey gin context key set by the auth middleware
const ContextClaimsKey = "claims"

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	jwt.RegisteredClaims
}
