package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"venograph/annotate"
	"venograph/controllers"
	"venograph/relay"
	"venograph/utils"
)

// corsMiddleware Use middleware for CORS (Cross-Origin Resource Sharing)
// TODO: This is too broad, cannot expose to the internet!
// CORS for * origins, allowing:
// - PUT, GET, POST, PATCH and DELETE methods
// - Origin header
// - Credentials share
// - Preflight requests cached for 12 hours
func corsMiddleware() gin.HandlerFunc {
	_corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"PUT", "GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return _corsMiddleware
}

// requestIDMiddleware Generate a UUID and attach it to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_uuid := uuid.NewV4()
		c.Writer.Header().Set("X-Request-Id", _uuid.String())
		c.Next()
	}
}

func main() {
	log.Info("Starting Venograph...")

	// Generate our config based on the config supplied
	// by the user in the flags
	configPath, debugMode, err := utils.ParseFlags()
	if err != nil {
		log.Fatal(err)
	}
	config, err := utils.NewConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Debug mode enables gin-gonic debug mode
	if debugMode == false {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Version tag to test against
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "v0.0.1",
		})
	})

	// Cache holding the live annotation sessions. Sessions expire after an
	// idle TTL and are never persisted.
	ttl := time.Duration(config.Annotate.SessionTTLMinutes) * time.Minute
	cache := annotate.NewSessionCache(ttl, time.Minute)

	// Forwarder to the relay backend, disabled unless both endpoint and
	// secret are configured.
	relayClient := relay.NewClient(config.Relay.Endpoint, config.Relay.APIKey)

	// REST API for the annotation workflow
	api := r.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.POST("/sessions", controllers.CreateSession(cache, config))
		v1.GET("/sessions/:id", controllers.GetSession(cache))
		v1.POST("/sessions/:id/rotate", controllers.RotateSession(cache))
		v1.POST("/sessions/:id/clicks", controllers.AddClick(cache))
		v1.POST("/sessions/:id/annotations", controllers.SaveAnnotation(cache, relayClient))
		v1.DELETE("/sessions/:id/annotations/:annotation_id", controllers.DeleteAnnotation(cache))

		// Exports, all derived from the same summary projection
		v1.GET("/sessions/:id/exports/markers.png", controllers.ExportMarkers(cache, config))
		v1.GET("/sessions/:id/exports/annotated.png", controllers.ExportAnnotated(cache, config))
		v1.GET("/sessions/:id/exports/table.png", controllers.ExportTable(cache, config))
		v1.GET("/sessions/:id/exports/summary.xlsx", controllers.ExportExcel(cache))
	}

	addr := fmt.Sprintf(":%s", config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscanll.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can"t be catch, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	// catching ctx.Done(). timeout of 1 seconds.
	select {
	case <-ctx.Done():
		log.Info("Timeout of 1 seconds.")
	}

	log.Info("Emptying session cache...")
	cache.StopCleanup()
	cache.Empty()

	log.Info("Server exiting")
}
