package handlers

import (
	"net/http"

	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()
	useJSONFieldNames()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
		r.NoRoute(func(c *gin.Context) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
		})
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Admin API. Access control sits in front of this service.
	admin := r.Group("/api/v1/admin")
	{
		admin.GET("/profiles", h.ListProfiles)
		admin.POST("/profiles", h.CreateProfile)
		admin.GET("/profiles/:id", h.GetProfile)
		admin.PUT("/profiles/:id", h.UpdateProfile)
		admin.DELETE("/profiles/:id", h.DeleteProfile)
		admin.POST("/profiles/:id/toggle-status", h.ToggleProfileStatus)

		admin.GET("/profiles/:id/links", h.ListLinks)
		admin.POST("/profiles/:id/links", h.CreateLink)
		admin.POST("/profiles/:id/links/reorder", h.ReorderLinks)

		admin.PUT("/links/:id", h.UpdateLink)
		admin.DELETE("/links/:id", h.DeleteLink)
		admin.POST("/links/:id/toggle-status", h.ToggleLinkStatus)
		admin.POST("/links/:id/toggle-hot", h.ToggleLinkHot)
	}

	public := r.Group("/")
	if rateLimiter != nil {
		public.Use(h.RateLimitMiddleware(rateLimiter))
	}
	{
		public.GET("/", h.ShowIndex)
		public.GET("/api/v1/directory", h.GetDirectory)
		public.GET("/api/v1/profiles/:slug", h.GetPublicProfile)
		public.GET("/go/:id", h.FollowLink)

		// Catch-all profile pages
		public.GET("/:slug", h.ShowProfile)
		public.GET("/:slug/qr", h.ProfileQRCode)
	}

	return r
}
