// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/config"
	"github.com/pricera/pricera-backend/internal/handlers"
	"github.com/pricera/pricera-backend/internal/mailer"
	"github.com/pricera/pricera-backend/internal/middleware"
	"github.com/pricera/pricera-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	smtpMailer := mailer.NewSMTPMailer(cfg.Email)
	notificationService := services.NewNotificationService(db, smtpMailer)

	phoneService := services.NewPhoneService(db)
	shopService := services.NewShopService(db)
	priceService := services.NewPriceService(db, notificationService, cfg.Notification.MinChangePercent)
	searchService := services.NewSearchService(db)
	insightService := services.NewInsightService(db)
	reviewService := services.NewReviewService(db)
	subscriberService := services.NewSubscriberService(db, notificationService)

	// Initialize handlers
	phoneHandler := handlers.NewPhoneHandler(phoneService)
	shopHandler := handlers.NewShopHandler(shopService)
	priceHandler := handlers.NewPriceHandler(priceService)
	searchHandler := handlers.NewSearchHandler(searchService)
	insightHandler := handlers.NewInsightHandler(insightService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Pricera API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		phones := api.Group("/phones")
		{
			phones.GET("", phoneHandler.GetPhones)
			phones.POST("", phoneHandler.CreatePhone)
			phones.GET("/:id", phoneHandler.GetPhone)
			phones.PUT("/:id", phoneHandler.UpdatePhone)
			phones.DELETE("/:id", phoneHandler.DeletePhone)
			phones.GET("/:id/specs", phoneHandler.GetSpecs)
			phones.POST("/:id/specs", phoneHandler.AddSpec)
			phones.PUT("/:id/specs/bulk", phoneHandler.ReplaceSpecs)
		}

		shops := api.Group("/shops")
		{
			shops.GET("", shopHandler.GetShops)
			shops.POST("", shopHandler.CreateShop)
			shops.GET("/:id", shopHandler.GetShop)
			shops.PUT("/:id", shopHandler.UpdateShop)
			shops.DELETE("/:id", shopHandler.DeleteShop)
		}

		prices := api.Group("/prices")
		{
			prices.GET("", priceHandler.GetPrices)
			prices.GET("/range", priceHandler.GetPricesInRange)
			prices.POST("", priceHandler.CreatePrice)
			prices.PUT("/:id", priceHandler.UpdatePrice)
			prices.DELETE("/:id", priceHandler.DeletePrice)
			prices.GET("/phone/:id/compare", priceHandler.ComparePrices)
		}

		search := api.Group("/search")
		{
			search.GET("/phones", searchHandler.SearchPhones)
			search.GET("/shops", searchHandler.SearchShops)
			search.GET("/prices/range", searchHandler.SearchPriceRange)
			search.GET("/by-brand", searchHandler.SearchByBrand)
		}

		ai := api.Group("/ai")
		{
			ai.GET("/predict/:phone_id", insightHandler.PredictPrice)
			ai.GET("/price-range/:phone_id", insightHandler.GetPriceRange)
			ai.GET("/comparison/:phone_id", insightHandler.GetComparison)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", reviewHandler.CreateReview)
			reviews.GET("", reviewHandler.GetReviews)
			reviews.GET("/stats/summary", reviewHandler.GetStats)
			reviews.GET("/:id", reviewHandler.GetReview)
			reviews.PUT("/:id", reviewHandler.UpdateReview)
			reviews.PUT("/:id/helpful", reviewHandler.IncrementHelpful)
			reviews.DELETE("/:id", reviewHandler.DeleteReview)
		}

		subscribers := api.Group("/subscribers")
		{
			subscribers.POST("", subscriberHandler.Subscribe)
			subscribers.GET("", subscriberHandler.GetSubscribers)
			subscribers.DELETE("/:email", subscriberHandler.Unsubscribe)
		}
	}

	return r
}
