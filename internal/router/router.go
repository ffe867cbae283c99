package router

import (
	"net/http"
	"time"

	"shopline/config"
	"shopline/internal/auth"
	"shopline/internal/domain"
	"shopline/internal/handler"
	"shopline/internal/middleware"
	"shopline/internal/repository"
	"shopline/internal/service"
	"shopline/internal/ws"
	"shopline/pkg/cloudinary"
	"shopline/pkg/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func Setup(cfg *config.Config, db *mongo.Database, verifier auth.Verifier, provider payment.Provider, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	feed := ws.NewHub()

	// Services
	checkoutSvc := service.NewCheckoutService(orderRepo, paymentRepo, provider)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	productHandler := handler.NewProductHandler(productRepo)
	orderHandler := handler.NewOrderHandler(orderRepo, feed)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc, feed)
	uploadHandler := handler.NewUploadHandler(cloud, productRepo)

	authMw := middleware.AuthRequired(verifier)
	adminMw := middleware.RequireRole(userRepo, domain.RoleAdmin)
	managerMw := middleware.RequireRole(userRepo, domain.RoleManager)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/users", userHandler.Register)
	r.GET("/users", userHandler.List)
	r.GET("/users/:email/role", userHandler.GetRole)
	r.PATCH("/users/:id/role", authMw, adminMw, userHandler.UpdateRole)

	r.POST("/products", authMw, managerMw, productHandler.Create)
	r.POST("/products/:id/image", authMw, managerMw, uploadHandler.UploadProductImage)
	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)

	r.POST("/orders", orderHandler.Create)
	r.GET("/orders", authMw, adminMw, orderHandler.List)

	r.POST("/create-checkout-session", checkoutHandler.CreateSession)
	r.PATCH("/payment-success", checkoutHandler.PaymentSuccess)

	r.GET("/ws/orders", ws.OrderFeed(verifier, userRepo, feed))

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Invalid route")
	})

	return r
}
