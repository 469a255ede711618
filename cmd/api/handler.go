package api

import (
	"konexio-backend/internal/auth/token"
	authUsecase "konexio-backend/internal/auth/usecase"
	contactUsecase "konexio-backend/internal/contact/usecase"
	"konexio-backend/pkg/config"
	"konexio-backend/pkg/validate"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	contactUsecase contactUsecase.ContactUsecase
	tokens         *token.Service
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, tokens *token.Service, cfg *config.Config) *Handler {
	validate.RegisterRules()

	return &Handler{
		authUsecase:    authUc,
		contactUsecase: contactUc,
		tokens:         tokens,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.contactUsecase, h.tokens)

	return r.Run(addr)
}
