package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// Claims são emitidas fora deste serviço; aqui apenas validamos o token
type Claims struct {
	UserID      int
	UserName    string
	UserEmail   string
	UserRoleID  int
	UserClients []int64
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.UserRoleID == RoleAdmin
}

// CanAccessClient indica se o usuário tem acesso ao cliente informado
func (c *Claims) CanAccessClient(clientID int64) bool {
	if c.IsAdmin() {
		return true
	}
	return slices.Contains(c.UserClients, clientID)
}
