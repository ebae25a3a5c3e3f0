package main

import (
	"log"
	"time"

	"github.com/clubhive/clubhive-be/app"
	"github.com/clubhive/clubhive-be/auth"
	"github.com/clubhive/clubhive-be/config"
	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/clubhive/clubhive-be/db/memory"
	"github.com/clubhive/clubhive-be/db/mysql"
	"github.com/clubhive/clubhive-be/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration", err)
	}

	database, err := getDatabase(cfg)
	if err != nil {
		log.Fatal("received err when attempting to connect to DB", err)
	}
	defer database.Close()

	resolver := auth.NewResolver(database)
	controller := app.NewTopicController(database, app.NewWordFilter(cfg.ReviewWords))

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FrontendOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddGroupRoutes(&r.RouterGroup, controller, resolver)
	routes.AddTopicRoutes(&r.RouterGroup, controller, resolver)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("error when attempting to run web server", err)
	}
}

func getDatabase(cfg *config.Config) (appDb.Database, error) {
	if cfg.Storage == "memory" {
		return memory.New(), nil
	}
	return mysql.GetDatabase(cfg)
}
