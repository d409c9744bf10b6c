package auth

import (
	"go-rms/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authRoutes := r.Group("/auth")
	// Tight limit on login attempts, PINs are only four digits.
	authRoutes.Use(middleware.RateLimitByIP(rate.Limit(1), 5))
	{
		authRoutes.POST("/login", h.Login)
	}
}
