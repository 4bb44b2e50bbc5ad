package api

import (
	"log"
	stdhttp "net/http"

	"tripplanner/internal/clients"
	intconfig "tripplanner/internal/config"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/sessions"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, store *sessions.Store, generator clients.TextGenerator) *gin.Engine {
	h.Configure(env, store, generator)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Auth (admin, untuk arsip)
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		// Plan lifecycle: submit -> current -> pdf -> reset
		plan := api.Group("/plan")
		plan.Use(middleware.Session(store))
		plan.GET("/limits", h.PlanLimits)
		plan.POST("", h.SubmitPlan)
		plan.GET("", h.GetPlan)
		plan.GET("/pdf", h.GetPlanPDF)
		plan.POST("/reset", h.ResetPlan)

		// Arsip itinerary (opsional, butuh DB + token admin)
		archive := api.Group("/archive")
		archive.Use(middleware.RequireAdmin([]byte(env.SessionSecret)))
		archive.GET("", h.ListArchive)
	}

	h.SetRouter(r)
	return r
}
