package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/guillenLawn/bodega-backend/auth"
	"github.com/guillenLawn/bodega-backend/controller"
	"github.com/guillenLawn/bodega-backend/middleware"
)

// Register wires every endpoint onto the engine.
func Register(router *gin.Engine, ct *controller.Controller, tokens *auth.Service, redisClient *redis.Client) {
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin()
	rateLimiter := middleware.RateLimiter(redisClient)

	api := router.Group("/api")
	{
		inventory := api.Group("/inventory")
		{
			inventory.GET("", ct.GetInventory)
			inventory.POST("", requireAuth, ct.CreateProducto)
			inventory.PUT("/:id", requireAuth, ct.UpdateProducto)
			inventory.DELETE("/:id", requireAuth, ct.DeleteProducto)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", rateLimiter, ct.Register)
			authGroup.POST("/login", rateLimiter, ct.Login)
			authGroup.GET("/verify", requireAuth, ct.Verify)
			authGroup.POST("/create-admin-user", ct.CreateAdmin)
			authGroup.POST("/convert-to-admin", ct.ConvertToAdmin)
			authGroup.POST("/reset-admin-password", ct.ResetAdminPassword)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.POST("", requireAuth, ct.CreatePedido)
			pedidos.GET("/usuario", requireAuth, ct.GetPedidosUsuario)
			pedidos.GET("/all", requireAuth, requireAdmin, ct.GetPedidosAll)
			pedidos.PUT("/:id/estado", requireAuth, requireAdmin, ct.UpdateEstadoPedido)
		}

		api.GET("/estadisticas", requireAuth, requireAdmin, ct.GetEstadisticas)
		api.GET("/debug/tablas", requireAuth, requireAdmin, ct.GetDebugTablas)
		api.POST("/reset-productos", requireAuth, requireAdmin, ct.ResetProductos)
	}
}
