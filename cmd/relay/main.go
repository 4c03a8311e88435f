package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"venograph/controllers"
	"venograph/models"
	"venograph/utils"
)

func main() {
	log.Info("Starting Venograph relay...")

	configPath, debugMode, err := utils.ParseFlags()
	if err != nil {
		log.Fatal(err)
	}
	config, err := utils.NewConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The shared secret is configuration, never a source literal.
	if config.Relay.APIKey == "" {
		log.Fatal("relay.api_key must be configured; generate one with venograph-keygen")
	}

	if debugMode == false {
		gin.SetMode(gin.ReleaseMode)
	}

	// With a sqlite file configured the relay stores each annotation before
	// echoing it; without one it is a pure echo.
	if config.Relay.Sqlite != "" {
		models.ConnectDataBase(config.Relay.Sqlite)
	}

	r := gin.Default()

	authorized := r.Group("/", controllers.APIKeyAuthMiddleware(config.Relay.APIKey))
	authorized.GET("", controllers.RelayRoot)
	authorized.POST("/save_annotation", controllers.RelaySaveAnnotation)

	addr := fmt.Sprintf(":%s", config.Relay.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown Relay ...")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Relay Shutdown:", err)
	}

	log.Info("Relay exiting")
}
