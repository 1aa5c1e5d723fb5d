package server

import (
	handler "bid-sniper/services/sniper/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(recordsHandler *handler.RecordsHandler, sniperHandler *handler.SniperHandler, hub *Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	accounts := router.Group("/accounts")
	{
		accounts.GET("", recordsHandler.ListAccountsHandler)
		accounts.POST("", recordsHandler.CreateAccountHandler)
		accounts.PUT("/:id", recordsHandler.UpdateAccountHandler)
		accounts.DELETE("/:id", recordsHandler.DeleteAccountHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", recordsHandler.ListAuctionsHandler)
		auctions.POST("", recordsHandler.CreateAuctionHandler)
		auctions.PUT("/:id", recordsHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", recordsHandler.DeleteAuctionHandler)
		auctions.POST("/import", recordsHandler.ImportAuctionsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("/schedule", sniperHandler.ScheduleAllHandler)
		bids.POST("/cancel", sniperHandler.CancelAllPendingHandler)
		bids.GET("/pending", sniperHandler.PendingHandler)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("/close", sniperHandler.CloseAllSessionsHandler)
	}

	if hub != nil {
		router.GET("/events/ws", hub.ServeWS)
	}

	return router
}
