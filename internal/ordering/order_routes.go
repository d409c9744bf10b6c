package ordering

import (
	"go-rms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	orders.Use(middleware.RateLimitByUser(rate.Limit(10), 20))
	if rdb != nil {
		orders.Use(middleware.Idempotency(rdb))
	}
	{
		orders.GET("", middleware.RBACAuthorize(rbacService, "order", "read"), h.GetAll)
		orders.GET("/:id", middleware.RBACAuthorize(rbacService, "order", "read"), h.GetByID)
		orders.POST("", middleware.RBACAuthorize(rbacService, "order", "create"), h.Create)
		orders.PATCH("/:id/items/:itemId", middleware.RBACAuthorize(rbacService, "order", "update"), h.SetItemQuantity)
		orders.PATCH("/:id/tip", middleware.RBACAuthorize(rbacService, "order", "update"), h.SetTip)
		orders.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "order", "update"), h.UpdateStatus)
		orders.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "order", "cancel"), h.Cancel)
		orders.POST("/:id/pay", middleware.RBACAuthorize(rbacService, "order", "pay"), h.Pay)
	}
}
