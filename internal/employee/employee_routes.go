package employee

import (
	"go-rms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Create)
		employees.PATCH("/:id", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Delete)
	}
}
