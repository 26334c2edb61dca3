package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/authsvc/domain"
)

// CasbinMW enforces route policies against the role claim set by AuthMW.
type CasbinMW struct {
	policySvc domain.PolicyService
}

// NewCasbinMW creates the policy enforcement middleware
func NewCasbinMW(policySvc domain.PolicyService) *CasbinMW {
	return &CasbinMW{policySvc: policySvc}
}

// Enforce checks (role, path, method) against the loaded policies.
func (m *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "no role claim"})
			c.Abort()
			return
		}

		allowed, err := m.policySvc.CheckPermission("role_"+role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
