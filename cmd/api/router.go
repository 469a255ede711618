package api

import (
	"net/http"

	authDelivery "konexio-backend/internal/auth/delivery"
	"konexio-backend/internal/auth/token"
	authUsecase "konexio-backend/internal/auth/usecase"
	contactDelivery "konexio-backend/internal/contact/delivery"
	contactUsecase "konexio-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, tokens *token.Service) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	contactHandler := contactDelivery.NewContactHandler(contactUc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HOMEPAGE"})
	})

	r.GET("/logout", authHandler.Logout)

	// Account routes
	users := r.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)

		// Admin surface
		users.GET("/", authDelivery.Authenticate(tokens), authDelivery.RequireAdmin(authUc), authHandler.ListUsers)
		users.DELETE("/", authDelivery.Authenticate(tokens), authDelivery.RequireAdmin(authUc), authHandler.DeleteUser)
	}

	// Contact routes (protected)
	contacts := r.Group("/contacts")
	contacts.Use(authDelivery.Authenticate(tokens))
	{
		contacts.GET("/", contactHandler.GetContacts)
		contacts.POST("/", contactHandler.CreateContact)
		contacts.PUT("/", contactHandler.UpdateContact)
		contacts.DELETE("/", contactHandler.DeleteContact)
	}

	// Any unmatched path or method answers with the same JSON 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "404 NOT FOUND."})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "404 NOT FOUND."})
	})
}
