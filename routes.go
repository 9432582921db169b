package main

import (
	"github.com/adityapawar327/Kick-It-Up/handlers"
	"github.com/adityapawar327/Kick-It-Up/services"
	"github.com/adityapawar327/Kick-It-Up/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// setupRoutes builds the services and wires every endpoint.
func setupRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db)
	userHandler := handlers.NewUserHandler(services.NewUserService(db))
	sneakerHandler := handlers.NewSneakerHandler(services.NewSneakerService(db))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(db))
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(db))
	favoriteHandler := handlers.NewFavoriteHandler(services.NewFavoriteService(db))
	uploadHandler := handlers.NewUploadHandler()

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public catalog
	api.Get("/sneakers", sneakerHandler.GetAllSneakers)
	api.Get("/sneakers/available", sneakerHandler.GetAvailableSneakers)
	api.Get("/sneakers/search", sneakerHandler.SearchSneakers)
	api.Get("/sneakers/:id", sneakerHandler.GetSneaker)
	api.Get("/sneakers/:id/reviews", reviewHandler.GetSneakerReviews)

	// Everything below requires a valid token
	protected := api.Group("", utils.AuthMiddleware)

	// Users
	protected.Get("/users/profile", userHandler.GetProfile)
	protected.Put("/users/profile", userHandler.UpdateProfile)
	protected.Post("/users/change-password", userHandler.ChangePassword)
	protected.Get("/users/search", userHandler.SearchUsers)
	protected.Get("/users/:id", userHandler.GetUserByID)

	// Listings
	protected.Post("/sneakers", sneakerHandler.CreateSneaker)
	protected.Put("/sneakers/:id", sneakerHandler.UpdateSneaker)
	protected.Delete("/sneakers/:id", sneakerHandler.DeleteSneaker)
	protected.Get("/my-sneakers", sneakerHandler.GetMySneakers)

	// Orders
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)
	protected.Get("/my-orders", orderHandler.GetMyOrders)

	// Reviews
	protected.Post("/reviews", reviewHandler.CreateReview)
	protected.Delete("/reviews/:id", reviewHandler.DeleteReview)
	protected.Get("/my-reviews", reviewHandler.GetMyReviews)

	// Favorites
	protected.Post("/favorites/:sneakerId", favoriteHandler.AddFavorite)
	protected.Delete("/favorites/:sneakerId", favoriteHandler.RemoveFavorite)
	protected.Get("/my-favorites", favoriteHandler.GetMyFavorites)

	// Uploads
	protected.Post("/upload", uploadHandler.UploadImage)
}
