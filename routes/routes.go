package routes

import (
	"time"

	"buenlibro-backend/handlers"
	"buenlibro-backend/middleware"
	"buenlibro-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	catalogo := &services.Catalogo{DB: db}
	auditoria := &services.Auditoria{DB: db}
	carrito := &services.Carrito{DB: db, Catalogo: catalogo, Auditoria: auditoria}

	authHandler := &handlers.AuthHandler{DB: db}
	productHandler := &handlers.ProductHandler{Catalogo: catalogo}
	cartHandler := &handlers.CartHandler{Carrito: carrito}
	logHandler := &handlers.LogHandler{Auditoria: auditoria}

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	{
		// Auth (rate limited)
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		// Public catalog
		api.GET("/productos", productHandler.GetProductos)
		api.GET("/productos/categoria/:categoria", productHandler.GetProductosPorCategoria)
		api.GET("/productos/:id", productHandler.GetProducto)

		// Client-reported access events (anonymous allowed)
		api.POST("/logs", logHandler.CreateLog)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/perfil", authHandler.GetPerfil)

		protected.GET("/carrito", cartHandler.GetCart)
		protected.POST("/carrito", cartHandler.AddToCart)
		protected.PUT("/carrito/:itemId", cartHandler.UpdateCartItem)
		protected.DELETE("/carrito/:itemId", cartHandler.RemoveFromCart)
		protected.DELETE("/carrito", cartHandler.ClearCart)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/productos", productHandler.GetAllProductos)
		admin.POST("/productos", productHandler.CreateProducto)
		admin.PUT("/productos/:id", productHandler.UpdateProducto)
		admin.DELETE("/productos/:id", productHandler.DeleteProducto)

		admin.GET("/logs", logHandler.GetLogs)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "online", "proyecto": "El Buen Libro - Backend"})
	})
}
