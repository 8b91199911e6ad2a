package router

import (
	"github.com/gin-gonic/gin"

	"jade-game/controller"
	"jade-game/middleware"
	"jade-game/ws"
)

func InitRouter(r *gin.Engine) {
	// 房间接口路由
	api := r.Group("/room")
	{
		api.POST("/create", controller.CreateRoom)
		api.GET("/list", controller.GetRoomList)
		api.GET("/:roomID", controller.GetRoomInfo)
		api.DELETE("/delete", middleware.AuthMiddleware(), controller.DeleteRoom)
	}

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
