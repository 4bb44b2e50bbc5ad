package handlers

import (
	"tripplanner/internal/clients"
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/internal/sessions"

	"github.com/gin-gonic/gin"
)

var (
	appEnv    intconfig.Env
	store     *sessions.Store
	generator clients.TextGenerator
)

// Configure wires shared handler dependencies once at boot.
func Configure(env intconfig.Env, s *sessions.Store, g clients.TextGenerator) {
	appEnv = env
	store = s
	generator = g
}

func plannerService(c *gin.Context) services.PlannerService {
	return services.PlannerService{
		Store:     store,
		Generator: generator,
		Archive:   repositories.ArchiveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}
