package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim required on admin endpoints
const AdminRole = "admin"

// AdminClaims represents the JWT claims accepted on admin endpoints
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`

	jwt.RegisteredClaims
}
