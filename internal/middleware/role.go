package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LocalizaAeServices/rental-api/internal/policy"
)

// Require bloqueia a rota quando o papel do token não tem a capacidade
// exigida. Uso: middleware.Require(policy.Role.CanRegisterUsers).
func Require(allowed func(policy.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := policy.Role(c.GetString(ContextUserRole))

		if !role.Known() || !allowed(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "manager_required",
				"message":    "Acesso negado: privilégios de gerente necessários.",
			})
			return
		}

		c.Next()
	}
}
