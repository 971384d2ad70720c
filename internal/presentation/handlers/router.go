package handlers

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-core/internal/middleware"
)

// Handlers groups everything the router serves
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Feed    *FeedHandler
	Profile *ProfileHandler
	Contact *ContactHandler
	Visitor *middleware.VisitorMiddleware
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	// Discord redirects the browser here, outside the API prefix
	discordAuth := router.Group("/auth/discord")
	discordAuth.Use(h.Visitor.Identify())
	{
		discordAuth.GET("/login", h.Auth.Login)
		discordAuth.GET("/callback", h.Auth.CallbackPage)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)

		feed := v1.Group("/feed/sessions")
		{
			feed.POST("", h.Feed.OpenSession)
			feed.GET("/:id", h.Feed.GetSession)
			feed.PUT("/:id/search", h.Feed.Search)
			feed.PUT("/:id/language", h.Feed.SelectLanguage)
			feed.POST("/:id/more", h.Feed.LoadMore)
			feed.POST("/:id/scroll", h.Feed.Scroll)
			feed.DELETE("/:id", h.Feed.CloseSession)
		}

		visitor := v1.Group("")
		visitor.Use(h.Visitor.Identify())
		{
			visitor.POST("/auth/discord/callback", h.Auth.CompleteCallback)
			visitor.GET("/profile", h.Profile.GetProfile)
			visitor.GET("/profile/events", h.Profile.StreamProfile)
			visitor.POST("/contact", h.Contact.Submit)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
