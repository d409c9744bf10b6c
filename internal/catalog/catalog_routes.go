package catalog

import (
	"go-rms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	// Public customer-facing endpoints, no auth.
	r.GET("/menu", h.GetMenu)
	r.GET("/tables/:number/qr", h.TableQR)

	items := r.Group("/menu-items")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", middleware.RBACAuthorize(rbacService, "catalog", "read"), h.GetAll)
		items.GET("/:id", middleware.RBACAuthorize(rbacService, "catalog", "read"), h.GetByID)
		items.POST("", middleware.RBACAuthorize(rbacService, "catalog", "write"), h.Create)
		items.PATCH("/:id", middleware.RBACAuthorize(rbacService, "catalog", "write"), h.Update)
		items.DELETE("/:id", middleware.RBACAuthorize(rbacService, "catalog", "write"), h.Delete)
	}
}
