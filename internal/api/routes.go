package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/youruser/agentcard/internal/config"
	"github.com/youruser/agentcard/internal/logger"
)

// RouteOptions configures the parts of the router that are not handlers.
type RouteOptions struct {
	RateLimit config.RateLimitConfig
	// AssetRoot is served under /assets when set.
	AssetRoot string
	Log       logger.Logger
}

func RegisterRoutes(r *gin.Engine, h *Handler, opts RouteOptions) {
	log := opts.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	r.Use(RequestID(), AccessLog(log), gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.AssetRoot != "" {
		r.Static("/assets", opts.AssetRoot)
	}

	limited := RateLimit(opts.RateLimit)
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/templates", h.listTemplates)
		api.POST("/card/render", limited, h.renderCard)
		api.GET("/qr", limited, h.qrHandler)
	}
}
