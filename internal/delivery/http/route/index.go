package route

import (
	"database/sql"

	httpHandler "bibtrade/internal/delivery/http/handler"
	"bibtrade/internal/delivery/http/middleware"
	mongorepo "bibtrade/internal/repository/mongodb"
	repo "bibtrade/internal/repository/postgresql"
	service "bibtrade/internal/service/postgresql"

	_ "bibtrade/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoute(app *gin.Engine, db *sql.DB, mongoClient *mongo.Client) {
	// --- repositories ---
	userRepo := repo.NewUserRepository(db)
	eventRepo := repo.NewEventRepository(db)
	listingRepo := repo.NewListingRepository(db)
	offerRepo := repo.NewOfferRepository(db)
	statsRepo := repo.NewStatsRepository(db)
	logRepo := mongorepo.NewLogRepository(mongoClient)

	// --- services ---
	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo, listingRepo)
	listingService := service.NewListingService(listingRepo, eventRepo, offerRepo, statsRepo, logRepo)
	offerService := service.NewOfferService(offerRepo, listingRepo, statsRepo, logRepo)
	statsService := service.NewStatsService(statsRepo, userRepo, listingRepo, offerRepo)

	// --- handlers ---
	authHandler := httpHandler.NewAuthHandler(authService)
	eventHandler := httpHandler.NewEventHandler(eventService)
	listingHandler := httpHandler.NewListingHandler(listingService)
	offerHandler := httpHandler.NewOfferHandler(offerService)
	profileHandler := httpHandler.NewProfileHandler(statsService)

	api := app.Group("/api")

	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(0),
	))
	app.Static("/uploads", "./uploads")

	// --- authentication & profile ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", middleware.AuthRequired(), authHandler.Profile)

	// --- events ---
	events := api.Group("/events")
	events.GET("", eventHandler.GetUpcomingEvents)
	events.GET("/:id", eventHandler.GetEventDetail)
	events.POST("", middleware.AuthRequired(), eventHandler.CreateEvent)

	// --- listings ---
	listings := api.Group("/listings")
	listings.GET("", listingHandler.SearchListings)
	listings.GET("/my", middleware.AuthRequired(), listingHandler.GetMyListings)
	listings.GET("/:id", listingHandler.GetListing)
	listings.POST("", middleware.AuthRequired(), listingHandler.CreateListing)
	listings.POST("/:id/cancel", middleware.AuthRequired(), listingHandler.CancelListing)
	listings.POST("/:id/finalize", middleware.AuthRequired(), offerHandler.FinalizeDeal)
	listings.POST("/:id/rate", middleware.AuthRequired(), profileHandler.RateDeal)

	// --- offers ---
	listings.POST("/:id/quote", middleware.AuthRequired(), offerHandler.QuoteHiddenPrice)
	listings.POST("/:id/offers", middleware.AuthRequired(), offerHandler.SubmitOffer)
	listings.GET("/:id/offers", middleware.AuthRequired(), offerHandler.GetOffersForListing)

	offers := api.Group("/offers", middleware.AuthRequired())
	offers.GET("/my", offerHandler.GetMyOffers)
	offers.POST("/:id/accept", offerHandler.AcceptOffer)
	offers.POST("/:id/reject", offerHandler.RejectOffer)
	offers.POST("/:id/withdraw", offerHandler.WithdrawOffer)

	// --- profiles & reputation ---
	users := api.Group("/users")
	users.GET("/:id", profileHandler.GetProfile)
}
