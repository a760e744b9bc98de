// Package server serves a built portfolio for local preview.
package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// New returns a gin engine serving the static site in dir. Nothing is
// rendered per request; dir must already contain a build.
func New(dir string) *gin.Engine {
	r := gin.Default()
	r.Use(cacheControl())

	// Home page
	r.StaticFile("/", filepath.Join(dir, "index.html"))

	r.Static("/images", filepath.Join(dir, "images"))
	r.Static("/static", filepath.Join(dir, "static"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// Asset paths are cached by the browser; the page itself is revalidated so a
// rebuild shows up on reload.
func cacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") {
			c.Header("Cache-Control", "public, max-age=3600")
		} else {
			c.Header("Cache-Control", "no-cache")
		}
		c.Next()
	}
}
