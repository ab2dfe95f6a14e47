package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pavitra93/go-client-registry/shared/config"
	"github.com/pavitra93/go-client-registry/shared/middleware"
	"github.com/pavitra93/go-client-registry/shared/models"
	"github.com/pavitra93/go-client-registry/shared/repository"
	"github.com/pavitra93/go-client-registry/shared/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create the schema if absent
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	router := setupRouter(db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	logrus.Infof("Client registry service starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start service:", err)
	}
}

// setupRouter wires repositories and routes onto a gin engine. The store
// handle is passed in explicitly; nothing holds it at package level.
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		utils.MessageResponse(c, "Service is healthy")
	})

	userRepo := repository.NewGormUserRepository(db)
	clientRepo := repository.NewGormClientRepository(db)

	router.GET("/users", handleListUsers(userRepo))
	router.PUT("/users", handleRenameUser(userRepo))
	router.POST("/clients", handleCreateClient(clientRepo))
	router.PATCH("/clients/:client_id", handleUpdateClient(clientRepo))

	return router
}
