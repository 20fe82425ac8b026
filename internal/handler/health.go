package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthz handles GET /healthz and GET /health
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// RedirectHome sends visitors of / to the project homepage
func RedirectHome(homepage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, homepage)
	}
}
