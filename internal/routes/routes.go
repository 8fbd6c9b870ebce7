package routes

import (
	"time"

	"silva_storefront/internal/auth"
	"silva_storefront/internal/cache"
	"silva_storefront/internal/handlers"
	"silva_storefront/internal/middleware"
	"silva_storefront/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Options struct {
	Cookies        sessions.Store
	Sessions       *session.Manager
	Store          cache.Store
	AllowedOrigins []string
	CartRateLimit  int
	Logger         *zap.Logger
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r.Use(
		middleware.CorrelationID(),
		middleware.Recovery(log),
		middleware.RequestLogger(log),
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderCorrelationID},
			ExposeHeaders:    []string{middleware.HeaderCorrelationID, "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.LoadSession(opts.Cookies, opts.Sessions))

	r.GET("/health", h.Health)
	r.GET("/", h.Home)

	// Auth
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.RequireSession(), h.Me)
	}

	// Acheteur
	buyer := r.Group("/buyer", middleware.RequireRole(auth.RoleBuyer))
	{
		buyer.GET("/products", h.ListProducts)
		buyer.GET("/categories", h.ListCategories)

		buyer.GET("/cart", h.GetCart)
		buyer.POST("/cart/items", middleware.CartRateLimit(opts.Store, opts.CartRateLimit, middleware.CartWindow, log), h.AddToCart)
		buyer.PATCH("/cart/items/:productId", h.UpdateCartItem)
		buyer.DELETE("/cart/items/:productId", h.RemoveFromCart)
		buyer.DELETE("/cart", h.ClearCart)
		buyer.GET("/cart/ws", h.CartWebSocket)

		buyer.POST("/checkout", h.Checkout)
	}

	// Vendeur
	seller := r.Group("/seller", middleware.RequireRole(auth.RoleSeller))
	{
		seller.GET("/orders", h.SellerOrders)
		seller.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// Admin
	admin := r.Group("/admin", middleware.RequireRole(auth.RoleAdmin), middleware.AuditAdminWrites(log))
	{
		admin.GET("/analytics", h.Analytics)

		admin.GET("/products", h.ListProducts)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/sellers", h.ListSellers)
		admin.POST("/sellers", h.CreateSeller)

		admin.GET("/orders", h.AdminOrders)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}
}
