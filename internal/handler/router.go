package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"visitorbadge/internal/render"
	"visitorbadge/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// EntityPrefix is where the entity API is mounted on the internal router
const EntityPrefix = "/internal/badges"

// NewPublicRouter builds the internet facing engine.
// The entity API is never mounted here.
func NewPublicRouter(svc service.BadgeServiceInterface, renderer render.RendererInterface, homepage string, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)

	router.GET("/", RedirectHome(homepage))
	router.GET("/badge", NewBadgeHandler(svc, renderer).Badge)
	router.GET("/api/analytics/:pageId", NewAnalyticsHandler(svc).GetAnalytics)

	router.GET("/health", Healthz)
	router.GET("/healthz", Healthz)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// NewInternalRouter builds the engine for the entity API.
// When token is set every entity call must present it as a bearer token.
func NewInternalRouter(svc service.BadgeServiceInterface, token string, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)

	router.GET("/healthz", Healthz)

	group := router.Group(EntityPrefix)
	if token != "" {
		group.Use(RequireToken(token))
	}
	NewEntityHandler(svc).Register(group)

	return router
}

// RequireToken rejects requests without the bearer token
func RequireToken(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
