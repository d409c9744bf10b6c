package payroll

import (
	"go-rms/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.RateLimitByUser(rate.Limit(10), 20))
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.GetAll)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.GetByID)
		payrolls.GET("/:id/compliance", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.Compliance)
		payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "write"), h.Create)
		payrolls.PUT("/:id", middleware.RBACAuthorize(rbacService, "payroll", "write"), h.Update)
		payrolls.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), h.Approve)
		payrolls.POST("/:id/pay", middleware.RBACAuthorize(rbacService, "payroll", "pay"), h.Pay)
		payrolls.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "payroll", "write"), h.Cancel)
	}
}
