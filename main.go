package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jade-game/logger"
	"jade-game/repository"
	"jade-game/router"
)

func main() {
	logger.Init()
	repository.InitRedis()
	repository.InitMySQL()

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
