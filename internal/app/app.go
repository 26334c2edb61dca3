package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/authsvc/internal/config"
	httpx "github.com/you/authsvc/internal/http"
	"github.com/you/authsvc/internal/http/handlers"
	"github.com/you/authsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc, container.ConfirmationSvc, container.UserRepo)
	polH := handlers.NewPolicyHandlers(container.PolicySvc)

	jwtMW := middleware.NewAuthMW(container.TokenSvc)
	casbinMW := middleware.NewCasbinMW(container.PolicySvc)

	r := httpx.BuildRouter(authH, polH, jwtMW, casbinMW)

	seedPolicies(container)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default route policies on first boot.
func seedPolicies(c *Container) {
	if len(c.PolicySvc.GetPolicies()) > 0 {
		return
	}
	c.PolicySvc.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	c.PolicySvc.AddPolicy("role_user", "/auth/me", "GET")
	log.Println("casbin: seeded default policies")
}
